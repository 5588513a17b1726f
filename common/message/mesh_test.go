package message

import (
	"math"
	"testing"

	"github.com/gorustyt/asr/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestMeshRoundTrip(t *testing.T) {
	for _, m := range []*geometry.Mesh{
		geometry.Box(1, 2, 3, 2, 2, 2, geometry.Solid, geometry.WithNormals()),
		geometry.Sphere(0.5, 6, 4, geometry.Wireframe, geometry.WithoutUV()),
		geometry.Circle(1, 5, geometry.PointCloud),
	} {
		t.Run(m.String(), func(t *testing.T) {
			got, err := DecodeMesh(EncodeMesh(m))
			require.NoError(t, err)
			assert.Equal(t, m, got)
		})
	}
}

func TestDecodeSkipsUnknownFields(t *testing.T) {
	m := geometry.Triangle(1, geometry.Solid)
	var b []byte
	b = protowire.AppendTag(b, 15, protowire.BytesType)
	b = protowire.AppendString(b, "label")
	b = protowire.AppendTag(b, 16, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 42)
	b = append(b, EncodeMesh(m)...)

	got, err := DecodeMesh(b)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestDecodeUnpacked(t *testing.T) {
	m := geometry.Triangle(2, geometry.Wireframe, geometry.WithoutUV())
	var b []byte
	for _, f := range m.Interleave() {
		b = protowire.AppendTag(b, fieldVertices, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(f))
	}
	for _, idx := range m.Indices {
		b = protowire.AppendTag(b, fieldIndices, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(idx))
	}
	b = protowire.AppendTag(b, fieldTopology, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(geometry.Lines))

	got, err := DecodeMesh(b)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestDecodeErrors(t *testing.T) {
	data := EncodeMesh(geometry.Rectangle(1, 1, 2, 2, geometry.Solid))
	_, err := DecodeMesh(data[:len(data)-3])
	assert.ErrorIs(t, err, ErrMalformed)

	bad := &geometry.Mesh{
		Vertices: make([]geometry.Vertex, 2),
		Indices:  []uint32{0, 5},
		Topology: geometry.Lines,
	}
	_, err = DecodeMesh(EncodeMesh(bad))
	assert.ErrorIs(t, err, geometry.ErrIndexOutOfRange)

	varint := func(num protowire.Number, v uint64) []byte {
		b := protowire.AppendTag(nil, num, protowire.VarintType)
		return protowire.AppendVarint(b, v)
	}
	point := EncodeMesh(&geometry.Mesh{Vertices: make([]geometry.Vertex, 2), Topology: geometry.Points})
	for name, tail := range map[string][]byte{
		"wide index":     varint(fieldIndices, 1<<32+1),
		"wide packed":    protowire.AppendBytes(protowire.AppendTag(nil, fieldIndices, protowire.BytesType), protowire.AppendVarint(nil, 1<<32)),
		"topology":       varint(fieldTopology, 99),
		"attribute bits": varint(fieldAttributes, 1<<5),
	} {
		data := append(append([]byte(nil), point...), tail...)
		_, err := DecodeMesh(data)
		assert.ErrorIs(t, err, ErrMalformed, name)
	}
}
