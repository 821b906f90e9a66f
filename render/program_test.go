// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import "testing"

func TestProgramValidateStages(t *testing.T) {
	var p Program
	p.RecordDesc(ProgramDesc{Name: "test"})
	if err := p.validate(); err == nil {
		t.Fatal("Program.validate: expected error with no shader stages")
	}
	p.RecordShader(ShaderSource{Stage: SVertex})
	if err := p.validate(); err == nil {
		t.Fatal("Program.validate: expected error with only a vertex stage")
	}
	p.RecordShader(ShaderSource{Stage: SFragment})
	if err := p.validate(); err != nil {
		t.Fatalf("Program.validate: unexpected error %v", err)
	}
}

func TestProgramUniformDirtyFlush(t *testing.T) {
	var p Program
	slotA := p.RecordUniform("model", UMat4x4)
	slotB := p.RecordUniform("color", UVec4)
	pad := p.RecordUniform("reserved", UPad)

	val := make([]byte, UMat4x4.Size())
	for i := range val {
		val[i] = byte(i)
	}
	p.RecordValue(slotA, val)

	if x := p.DirtyUniformsSize(); x != UMat4x4.Size() {
		t.Fatalf("Program.DirtyUniformsSize:\nhave %d\nwant %d", x, UMat4x4.Size())
	}
	if x := p.DirtyBits(); x != 1<<uint(slotA) {
		t.Fatalf("Program.DirtyBits:\nhave %#x\nwant %#x", x, 1<<uint(slotA))
	}

	dst := make([]byte, p.DirtyUniformsSize())
	n := p.flushDirtyUniforms(dst)
	if n != len(val) {
		t.Fatalf("Program.flushDirtyUniforms: bytes written\nhave %d\nwant %d", n, len(val))
	}
	for i := range val {
		if dst[i] != val[i] {
			t.Fatalf("Program.flushDirtyUniforms: byte %d\nhave %d\nwant %d", i, dst[i], val[i])
		}
	}

	p.clearDirty()
	if x := p.DirtyBits(); x != 0 {
		t.Fatalf("Program.DirtyBits after clearDirty:\nhave %#x\nwant 0", x)
	}

	colorVal := make([]byte, UVec4.Size())
	p.RecordValue(slotB, colorVal)
	defer func() {
		if recover() == nil {
			t.Fatal("Program.RecordValue: expected panic writing a padding uniform")
		}
	}()
	p.RecordValue(pad, []byte{})
}

func TestProgramRecordValueSizeMismatch(t *testing.T) {
	var p Program
	slot := p.RecordUniform("scale", UScalar)
	defer func() {
		if recover() == nil {
			t.Fatal("Program.RecordValue: expected panic on size mismatch")
		}
	}()
	p.RecordValue(slot, []byte{1, 2})
}

func TestProgramUniformSlotsExceeded(t *testing.T) {
	var p Program
	for i := 0; i < MaxUniformSlots; i++ {
		p.RecordUniform("u", UScalar)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Program.RecordUniform: expected panic past MaxUniformSlots")
		}
	}()
	p.RecordUniform("overflow", UScalar)
}
