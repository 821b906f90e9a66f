// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import "testing"

func TestComputeLevels(t *testing.T) {
	cases := []struct {
		w, h, d int
		want    int
	}{
		{1, 1, 0, 1},
		{1024, 1, 0, 11},
		{1024, 1024, 0, 11},
		{7, 3, 0, 3},
	}
	for _, c := range cases {
		if x := ComputeLevels(c.w, c.h, c.d); x != c.want {
			t.Fatalf("ComputeLevels(%d,%d,%d):\nhave %d\nwant %d", c.w, c.h, c.d, x, c.want)
		}
	}
}

func TestTextureComputeLevelsAttachment(t *testing.T) {
	var tex Texture
	initResource(&tex.Resource, KTexture2D, 0, nil)
	tex.RecordDesc(TexDesc{Format: FRGBA8, Usage: TexAttachment, Width: 256, Height: 256})
	tex.computeLevels()
	if x := tex.Levels(); x != 9 {
		t.Fatalf("Texture.Levels:\nhave %d\nwant 9", x)
	}
	if tex.Data() != nil {
		t.Fatal("Texture.Data: attachment texture must not allocate client storage")
	}
}

func TestTextureWriteAndLevelInfo(t *testing.T) {
	var tex Texture
	initResource(&tex.Resource, KTexture2D, 0, nil)
	tex.RecordDesc(TexDesc{Format: FR8, Usage: TexStatic, Width: 4, Height: 4})
	tex.computeLevels()
	lv := tex.LevelInfo(0)
	if lv.Size != 16 {
		t.Fatalf("Texture.LevelInfo level 0 size:\nhave %d\nwant 16", lv.Size)
	}
	data := make([]byte, 16)
	tex.Write(0, 0, data)
	if x := tex.ByteUsage(); x != 16 {
		t.Fatalf("Texture.ByteUsage:\nhave %d\nwant 16", x)
	}
}

func TestTextureWriteAttachmentPanics(t *testing.T) {
	var tex Texture
	initResource(&tex.Resource, KTexture2D, 0, nil)
	tex.RecordDesc(TexDesc{Format: FRGBA8, Usage: TexAttachment, Width: 4, Height: 4})
	tex.computeLevels()
	defer func() {
		if recover() == nil {
			t.Fatal("Texture.Write: expected panic for attachment texture")
		}
	}()
	tex.Write(0, 0, make([]byte, 64))
}

func TestTextureCubeFaces(t *testing.T) {
	var tex Texture
	initResource(&tex.Resource, KTextureCM, 0, nil)
	tex.RecordDesc(TexDesc{Format: FRGBA8, Usage: TexStatic, Width: 2, Height: 2})
	tex.computeLevels()
	lv := tex.LevelInfo(0)
	if want := 2 * 2 * 4 * 6; lv.Size != want {
		t.Fatalf("Texture.LevelInfo cubemap size:\nhave %d\nwant %d", lv.Size, want)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Texture.Write: expected panic for out-of-range face")
		}
	}()
	tex.Write(0, 6, make([]byte, 16))
}

func TestDataFormatSize(t *testing.T) {
	if x := FRGBA16Float.Size(); x != 8 {
		t.Fatalf("DataFormat.Size(FRGBA16Float):\nhave %d\nwant 8", x)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("DataFormat.Size: expected panic for undefined format")
		}
	}()
	DataFormat(999).Size()
}
