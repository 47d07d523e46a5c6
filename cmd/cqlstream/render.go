package main

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/arloliu/cqlstream/types"
	"github.com/arloliu/cqlstream/wire"
)

// renderer writes records in a chosen output format.
type renderer interface {
	Render(rec *types.Record) error
	Flush() error
}

func newRenderer(format string, out io.Writer) (renderer, error) {
	switch format {
	case "json":
		return &jsonRenderer{out: out}, nil
	case "msgpack":
		return &msgpackRenderer{enc: wire.NewEncoder(out)}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// jsonRenderer writes one JSON object per line, keys in record order.
type jsonRenderer struct {
	out io.Writer
	buf bytes.Buffer
}

func (r *jsonRenderer) Render(rec *types.Record) error {
	r.buf.Reset()
	r.buf.WriteByte('{')

	for i := 0; i < rec.Len(); i++ {
		name, val := rec.Index(i)
		if i > 0 {
			r.buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		r.buf.Write(key)
		r.buf.WriteByte(':')

		encoded, err := json.Marshal(val.Interface())
		if err != nil {
			return err
		}
		r.buf.Write(encoded)
	}

	r.buf.WriteString("}\n")
	_, err := r.out.Write(r.buf.Bytes())

	return err
}

func (r *jsonRenderer) Flush() error {
	return nil
}

// msgpackRenderer streams records through the wire encoder.
type msgpackRenderer struct {
	enc *wire.Encoder
}

func (r *msgpackRenderer) Render(rec *types.Record) error {
	return r.enc.EncodeRecord(rec)
}

func (r *msgpackRenderer) Flush() error {
	return r.enc.Flush()
}
