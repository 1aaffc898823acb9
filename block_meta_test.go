package lsmcore

import "testing"

func TestBlockMetaEncodeDecodeRoundTrip(t *testing.T) {
	metas := []BlockMeta{
		{Offset: 0, FirstKey: []byte("a"), LastKey: []byte("m")},
		{Offset: 4096, FirstKey: []byte("n"), LastKey: []byte("z")},
	}
	encoded := EncodeBlockMetas(metas)

	decoded, err := DecodeBlockMetas(encoded)
	if err != nil {
		t.Fatalf("DecodeBlockMetas: %v", err)
	}
	if len(decoded) != len(metas) {
		t.Fatalf("got %d metas, want %d", len(decoded), len(metas))
	}
	for i, want := range metas {
		got := decoded[i]
		if got.Offset != want.Offset || string(got.FirstKey) != string(want.FirstKey) || string(got.LastKey) != string(want.LastKey) {
			t.Fatalf("meta %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestBlockMetaEncodeDecodeEmpty(t *testing.T) {
	encoded := EncodeBlockMetas(nil)
	decoded, err := DecodeBlockMetas(encoded)
	if err != nil {
		t.Fatalf("DecodeBlockMetas(empty): %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("got %d metas, want 0", len(decoded))
	}
}

func TestBlockMetaDecodeRejectsCorruption(t *testing.T) {
	metas := []BlockMeta{{Offset: 1, FirstKey: []byte("a"), LastKey: []byte("b")}}
	encoded := EncodeBlockMetas(metas)
	encoded[len(encoded)/2] ^= 0xFF

	if _, err := DecodeBlockMetas(encoded); err != ErrMetaDecode {
		t.Fatalf("got %v, want ErrMetaDecode", err)
	}
}

func TestBlockMetaDecodeRejectsShortBuffer(t *testing.T) {
	if _, err := DecodeBlockMetas([]byte{0, 1}); err != ErrMetaDecode {
		t.Fatalf("got %v, want ErrMetaDecode", err)
	}
}
