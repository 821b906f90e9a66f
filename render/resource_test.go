// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import "testing"

func TestResourceRefCount(t *testing.T) {
	var r Resource
	initResource(&r, KBuffer, 3, nil)
	if x := r.RefCount(); x != 1 {
		t.Fatalf("Resource.RefCount after init:\nhave %d\nwant 1", x)
	}
	if x := r.Handle(); x != 3 {
		t.Fatalf("Resource.Handle:\nhave %d\nwant 3", x)
	}
	r.Acquire()
	if x := r.RefCount(); x != 2 {
		t.Fatalf("Resource.RefCount after Acquire:\nhave %d\nwant 2", x)
	}
	if r.Release() {
		t.Fatal("Resource.Release: should not report zero yet")
	}
	if !r.Release() {
		t.Fatal("Resource.Release: should report reaching zero")
	}
}

func TestResourceReleaseUnderflow(t *testing.T) {
	var r Resource
	initResource(&r, KBuffer, 0, nil)
	r.Release()
	defer func() {
		if recover() == nil {
			t.Fatal("Resource.Release: expected panic on underflow")
		}
	}()
	r.Release()
}

func TestResourceAcquireFromZero(t *testing.T) {
	var r Resource
	initResource(&r, KBuffer, 0, nil)
	r.Release()
	defer func() {
		if recover() == nil {
			t.Fatal("Resource.Acquire: expected panic on dead resource")
		}
	}()
	r.Acquire()
}

func TestResourceByteUsage(t *testing.T) {
	var r Resource
	initResource(&r, KTexture2D, 0, nil)
	r.addBytes(128)
	r.addBytes(64)
	if x := r.ByteUsage(); x != 192 {
		t.Fatalf("Resource.ByteUsage:\nhave %d\nwant 192", x)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KBuffer:    "Buffer",
		KTexture1D: "Texture1D",
		KTextureCM: "TextureCM",
		KTarget:    "Target",
		KProgram:   "Program",
	}
	for k, want := range cases {
		if x := k.String(); x != want {
			t.Fatalf("Kind.String(%d):\nhave %s\nwant %s", k, x, want)
		}
	}
}
