package message

import (
	"math"

	"github.com/gorustyt/asr/geometry"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Mesh wire fields.
//
//	1 topology    varint
//	2 attributes  varint
//	3 vertices    packed fixed32, interleaved by geometry.LayoutFor(attributes)
//	4 indices     packed varint
const (
	fieldTopology   protowire.Number = 1
	fieldAttributes protowire.Number = 2
	fieldVertices   protowire.Number = 3
	fieldIndices    protowire.Number = 4
)

var ErrMalformed = errors.New("message: malformed mesh")

// EncodeMesh serialises m with the protobuf wire encoding.
func EncodeMesh(m *geometry.Mesh) []byte {
	floats := m.Interleave()
	b := make([]byte, 0, 16+len(floats)*4+len(m.Indices)*2)

	b = protowire.AppendTag(b, fieldTopology, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.Topology))
	b = protowire.AppendTag(b, fieldAttributes, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.Attributes))

	packed := make([]byte, 0, len(floats)*4)
	for _, f := range floats {
		packed = protowire.AppendFixed32(packed, math.Float32bits(f))
	}
	b = protowire.AppendTag(b, fieldVertices, protowire.BytesType)
	b = protowire.AppendBytes(b, packed)

	packed = packed[:0]
	for _, idx := range m.Indices {
		packed = protowire.AppendVarint(packed, uint64(idx))
	}
	b = protowire.AppendTag(b, fieldIndices, protowire.BytesType)
	b = protowire.AppendBytes(b, packed)
	return b
}

// DecodeMesh parses data written by EncodeMesh. Unknown fields are skipped and
// repeated fields are accepted both packed and unpacked. The decoded mesh is
// validated before it is returned.
func DecodeMesh(data []byte) (*geometry.Mesh, error) {
	m := &geometry.Mesh{}
	var floats []float32
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, wireError(protowire.ParseError(n), "tag")
		}
		data = data[n:]

		switch {
		case num == fieldTopology && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n), "topology")
			}
			if v > uint64(geometry.TriangleStrip) {
				return nil, errors.Wrapf(ErrMalformed, "topology %d", v)
			}
			m.Topology = geometry.Topology(v)
			data = data[n:]
		case num == fieldAttributes && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n), "attributes")
			}
			if v&^uint64(geometry.AttrNormal|geometry.AttrUV) != 0 {
				return nil, errors.Wrapf(ErrMalformed, "attributes %#x", v)
			}
			m.Attributes = geometry.Attributes(v)
			data = data[n:]
		case num == fieldVertices && typ == protowire.BytesType:
			packed, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n), "vertices")
			}
			for len(packed) > 0 {
				v, k := protowire.ConsumeFixed32(packed)
				if k < 0 {
					return nil, wireError(protowire.ParseError(k), "vertices")
				}
				floats = append(floats, math.Float32frombits(v))
				packed = packed[k:]
			}
			data = data[n:]
		case num == fieldVertices && typ == protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n), "vertices")
			}
			floats = append(floats, math.Float32frombits(v))
			data = data[n:]
		case num == fieldIndices && typ == protowire.BytesType:
			packed, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n), "indices")
			}
			for len(packed) > 0 {
				v, k := protowire.ConsumeVarint(packed)
				if k < 0 {
					return nil, wireError(protowire.ParseError(k), "indices")
				}
				idx, err := index(v)
				if err != nil {
					return nil, err
				}
				m.Indices = append(m.Indices, idx)
				packed = packed[k:]
			}
			data = data[n:]
		case num == fieldIndices && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n), "indices")
			}
			idx, err := index(v)
			if err != nil {
				return nil, err
			}
			m.Indices = append(m.Indices, idx)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, wireError(protowire.ParseError(n), "unknown field")
			}
			data = data[n:]
		}
	}

	vertices, err := geometry.Deinterleave(floats, m.Attributes)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	m.Vertices = vertices
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func index(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, errors.Wrapf(ErrMalformed, "index %d overflows uint32", v)
	}
	return uint32(v), nil
}

func wireError(err error, what string) error {
	return errors.Wrapf(ErrMalformed, "%s: %v", what, err)
}
