// Copyright (c) 2024 aerth
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package stackerr

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// Site is a function name and a file:line.
type Site struct {
	Func string
	File string
	Line int
}

func (s Site) String() string {
	if s.Func == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s (%s:%d)", s.Func, s.File, s.Line)
}

// Caller returns the site of the caller of the function calling Caller,
// plus skip more frames.
func Caller(skip int) Site {
	pc, file, line, ok := runtime.Caller(skip + 2)
	if !ok {
		return Site{}
	}
	s := Site{File: cleanpath(file), Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		s.Func = filepath.Base(fn.Name())
	}
	return s
}

var (
	prefixOnce sync.Once
	modprefix  string
	workdir    string
)

// cleanpath trims the main module path or working directory from p
func cleanpath(p string) string {
	prefixOnce.Do(func() {
		if info, ok := debug.ReadBuildInfo(); ok {
			modprefix = info.Main.Path
		}
		if dir, err := os.Getwd(); err == nil && dir != "/" {
			workdir = dir
		}
	})
	orig := p
	if modprefix != "" {
		p = strings.TrimPrefix(p, modprefix)
	}
	if workdir != "" {
		p = strings.TrimPrefix(p, workdir)
	}
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return orig
	}
	return p
}
