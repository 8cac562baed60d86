// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// anydb package stores json values in bbolt buckets, generically.
package anydb

import (
	"fmt"

	"github.com/aerth/readnum/ncode"
	"go.etcd.io/bbolt"
)

type byteslike interface {
	~string | ~[]byte
}

// Fetch anything magic
func Fetch[T any, K byteslike](db *bbolt.DB, bucket string, key K) (T, error) {
	var v T
	err := db.View(func(tx *bbolt.Tx) error {
		var err error
		v, err = FetchTx[T](tx, bucket, key)
		return err
	})
	return v, err
}

// FetchTx anything (but in a Tx). Missing key is ncode.ErrZeroLength
func FetchTx[T any, K byteslike](tx *bbolt.Tx, bucket string, key K) (T, error) {
	bu := tx.Bucket([]byte(bucket))
	if bu == nil {
		var v T
		return v, bbolt.ErrBucketNotFound
	}
	if len(key) == 0 {
		var v T
		return v, fmt.Errorf("empty key?")
	}
	return ncode.DecodeJson[T](bu.Get([]byte(key)))
}

func StoreTx[K byteslike](tx *bbolt.Tx, bucket string, key K, val any) error {
	bu := tx.Bucket([]byte(bucket))
	if bu == nil {
		return bbolt.ErrBucketNotFound
	}
	return bu.Put([]byte(key), ncode.Json(val))
}

// AppendTx stores the value built for the bucket's next sequence number under a
// big endian key, so ForEach walks values in append order.
func AppendTx[T any](tx *bbolt.Tx, bucket string, build func(seq uint64) T) (uint64, error) {
	bu := tx.Bucket([]byte(bucket))
	if bu == nil {
		return 0, bbolt.ErrBucketNotFound
	}
	seq, err := bu.NextSequence()
	if err != nil {
		return 0, err
	}
	return seq, bu.Put(ncode.N2B(seq), ncode.Json(build(seq)))
}

// EachTx decodes every value in the bucket, in key order. Stops at the first error.
func EachTx[T any](tx *bbolt.Tx, bucket string, fn func(key []byte, v T) error) error {
	bu := tx.Bucket([]byte(bucket))
	if bu == nil {
		return bbolt.ErrBucketNotFound
	}
	return bu.ForEach(func(k, raw []byte) error {
		if raw == nil { // nested bucket
			return nil
		}
		v, err := ncode.DecodeJson[T](raw)
		if err != nil {
			return fmt.Errorf("decode %x: %w", k, err)
		}
		return fn(k, v)
	})
}

// ResetTx empties the bucket, creating it if needed. Sequence starts over.
func ResetTx(tx *bbolt.Tx, bucket string) error {
	if tx.Bucket([]byte(bucket)) != nil {
		if err := tx.DeleteBucket([]byte(bucket)); err != nil {
			return err
		}
	}
	_, err := tx.CreateBucket([]byte(bucket))
	return err
}
