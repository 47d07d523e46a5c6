// Package wire encodes records as MessagePack for plugin-style host
// boundaries.
package wire

import (
	"fmt"
	"io"

	"github.com/tinylib/msgp/msgp"

	"github.com/arloliu/cqlstream/types"
)

// Encoder writes records as MessagePack to an underlying writer.
//
// Each record becomes one map whose keys are the column names in record
// order. Values encode by kind: scalars map to their native MessagePack
// types, timestamps use the timestamp extension, durations become a
// three-entry map of months, days and nanoseconds, and nested collections
// recurse. An Encoder is not safe for concurrent use.
type Encoder struct {
	w *msgp.Writer
}

// NewEncoder creates an encoder over w.
//
// Parameters:
//   - w: Destination for the encoded stream
//
// Returns:
//   - *Encoder: The encoder
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: msgp.NewWriter(w)}
}

// EncodeRecord writes one record. Call Flush after the last record to drain
// the internal buffer.
func (e *Encoder) EncodeRecord(rec *types.Record) error {
	if err := e.w.WriteMapHeader(uint32(rec.Len())); err != nil {
		return err
	}

	for i := 0; i < rec.Len(); i++ {
		name, val := rec.Index(i)
		if err := e.w.WriteString(name); err != nil {
			return err
		}
		if err := e.encodeValue(val); err != nil {
			return err
		}
	}

	return nil
}

// Flush drains the internal buffer to the underlying writer.
func (e *Encoder) Flush() error {
	return e.w.Flush()
}

func (e *Encoder) encodeValue(v types.Value) error {
	switch v.Kind {
	case types.KindNull:
		return e.w.WriteNil()
	case types.KindBool:
		return e.w.WriteBool(v.Bool)
	case types.KindInt:
		return e.w.WriteInt64(v.Int)
	case types.KindFloat:
		if v.Width == 32 {
			return e.w.WriteFloat32(float32(v.Float))
		}
		return e.w.WriteFloat64(v.Float)
	case types.KindString, types.KindDate, types.KindTime:
		return e.w.WriteString(v.Str)
	case types.KindBytes:
		return e.w.WriteBytes(v.Bytes)
	case types.KindDateTime:
		return e.w.WriteTime(v.Time)
	case types.KindDuration:
		return e.encodeDuration(v.Duration)
	case types.KindList, types.KindSet, types.KindTuple:
		if err := e.w.WriteArrayHeader(uint32(len(v.Elems))); err != nil {
			return err
		}
		for _, elem := range v.Elems {
			if err := e.encodeValue(elem); err != nil {
				return err
			}
		}
		return nil
	case types.KindMap:
		if err := e.w.WriteMapHeader(uint32(len(v.Entries))); err != nil {
			return err
		}
		for _, entry := range v.Entries {
			if err := e.encodeValue(entry.Key); err != nil {
				return err
			}
			if err := e.encodeValue(entry.Value); err != nil {
				return err
			}
		}
		return nil
	case types.KindRecord:
		return e.EncodeRecord(v.Record)
	}

	return fmt.Errorf("wire: cannot encode value of kind %s", v.Kind)
}

func (e *Encoder) encodeDuration(d types.Duration) error {
	if err := e.w.WriteMapHeader(3); err != nil {
		return err
	}
	if err := e.w.WriteString("months"); err != nil {
		return err
	}
	if err := e.w.WriteInt64(int64(d.Months)); err != nil {
		return err
	}
	if err := e.w.WriteString("days"); err != nil {
		return err
	}
	if err := e.w.WriteInt64(int64(d.Days)); err != nil {
		return err
	}
	if err := e.w.WriteString("nanoseconds"); err != nil {
		return err
	}

	return e.w.WriteInt64(d.Nanoseconds)
}
