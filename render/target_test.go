// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import "testing"

func TestTargetAddColorDimensionMismatch(t *testing.T) {
	var t1, t2 Texture
	initResource(&t1.Resource, KTexture2D, 0, nil)
	t1.RecordDesc(TexDesc{Format: FRGBA8, Usage: TexAttachment, Width: 64, Height: 64})
	t1.computeLevels()
	initResource(&t2.Resource, KTexture2D, 1, nil)
	t2.RecordDesc(TexDesc{Format: FRGBA8, Usage: TexAttachment, Width: 32, Height: 32})
	t2.computeLevels()

	var tg Target
	if err := tg.AddColor(&t1, 0, 0); err != nil {
		t.Fatalf("Target.AddColor: unexpected error %v", err)
	}
	if err := tg.AddColor(&t2, 0, 0); err == nil {
		t.Fatal("Target.AddColor: expected error on mismatched dimensions")
	}
}

func TestTargetDepthStencilExclusivity(t *testing.T) {
	var d, s Texture
	initResource(&d.Resource, KTexture2D, 0, nil)
	d.RecordDesc(TexDesc{Format: FD24, Usage: TexAttachment, Width: 64, Height: 64})
	d.computeLevels()
	initResource(&s.Resource, KTexture2D, 1, nil)
	s.RecordDesc(TexDesc{Format: FD24S8, Usage: TexAttachment, Width: 64, Height: 64})
	s.computeLevels()

	var tg Target
	if err := tg.AttachDepth(&d); err != nil {
		t.Fatalf("Target.AttachDepth: unexpected error %v", err)
	}
	if !tg.HasDepth() {
		t.Fatal("Target.HasDepth: expected true after AttachDepth")
	}
	if err := tg.AttachStencil(&s); err == nil {
		t.Fatal("Target.AttachStencil: expected error, target already has a depth/stencil attachment")
	}
}

func TestTargetTooManyColorAttachments(t *testing.T) {
	var tg Target
	for i := 0; i < kMaxColorAttachments; i++ {
		var tex Texture
		initResource(&tex.Resource, KTexture2D, i, nil)
		tex.RecordDesc(TexDesc{Format: FRGBA8, Usage: TexAttachment, Width: 8, Height: 8})
		tex.computeLevels()
		if err := tg.AddColor(&tex, 0, 0); err != nil {
			t.Fatalf("Target.AddColor %d: unexpected error %v", i, err)
		}
	}
	var extra Texture
	initResource(&extra.Resource, KTexture2D, kMaxColorAttachments, nil)
	extra.RecordDesc(TexDesc{Format: FRGBA8, Usage: TexAttachment, Width: 8, Height: 8})
	extra.computeLevels()
	if err := tg.AddColor(&extra, 0, 0); err == nil {
		t.Fatal("Target.AddColor: expected error past kMaxColorAttachments")
	}
}
