package boolop

import "testing"

// operand pairs in truth-table order: FF, FT, TF, TT
var pairs = [4][2]bool{{false, false}, {false, true}, {true, false}, {true, true}}

func TestComputeTable(t *testing.T) {
	table := map[Code][4]bool{
		False:      {false, false, false, false},
		And:        {false, false, false, true},
		Nimply:     {false, false, true, false},
		Left:       {false, false, true, true},
		ConvNimply: {false, true, false, false},
		Right:      {false, true, false, true},
		Xor:        {false, true, true, false},
		Or:         {false, true, true, true},
		Nor:        {true, false, false, false},
		Xnor:       {true, false, false, true},
		NotRight:   {true, false, true, false},
		ConvImply:  {true, false, true, true},
		NotLeft:    {true, true, false, false},
		Imply:      {true, true, false, true},
		Nand:       {true, true, true, false},
		True:       {true, true, true, true},
	}
	if len(table) != NumCodes {
		t.Fatalf("table covers %d codes, want %d", len(table), NumCodes)
	}
	for code, want := range table {
		for p, pr := range pairs {
			if got := Compute(pr[0], pr[1], code); got != want[p] {
				t.Errorf("Compute(%v, %v, %v) == %v, want %v", pr[0], pr[1], code, got, want[p])
			}
		}
	}
}

// Each code is the big-endian bit pattern of its own truth-table column.
func TestComputeBitPattern(t *testing.T) {
	for code := Code(0); code < NumCodes; code++ {
		for p, pr := range pairs {
			want := code>>(3-p)&1 != 0
			if got := Compute(pr[0], pr[1], code); got != want {
				t.Errorf("Compute(%v, %v, %d) == %v, want bit %v", pr[0], pr[1], code, got, want)
			}
		}
	}
}

func TestComputeDuality(t *testing.T) {
	for _, pr := range pairs {
		l, r := pr[0], pr[1]
		if Compute(l, r, Xor) != (l != r) {
			t.Errorf("Xor(%v, %v) != (%v != %v)", l, r, l, r)
		}
		if Compute(l, r, Xnor) != (l == r) {
			t.Errorf("Xnor(%v, %v) != (%v == %v)", l, r, l, r)
		}
		if Compute(l, r, Nand) != !Compute(l, r, And) {
			t.Errorf("Nand(%v, %v) is not the negation of And", l, r)
		}
		if Compute(l, r, Nor) != !Compute(l, r, Or) {
			t.Errorf("Nor(%v, %v) is not the negation of Or", l, r)
		}
	}
}

func TestComputeOutOfRange(t *testing.T) {
	for _, code := range []Code{16, 17, 100, 255} {
		if code.Valid() {
			t.Errorf("Code(%d).Valid() == true", code)
		}
		for _, pr := range pairs {
			if !Compute(pr[0], pr[1], code) {
				t.Errorf("Compute(%v, %v, %d) == false, out-of-range codes are constant true", pr[0], pr[1], code)
			}
		}
	}
}

func TestCodeString(t *testing.T) {
	if And.String() != "and" || Xor.String() != "xor" || True.String() != "true" {
		t.Errorf("unexpected mnemonics: %v %v %v", And, Xor, True)
	}
	if Code(200).String() != True.String() {
		t.Errorf("Code(200).String() == %q, want %q", Code(200).String(), True.String())
	}
}

// sanity check fuzz
func FuzzCompute(f *testing.F) {
	f.Add(uint8(0), false, false)
	f.Add(uint8(15), true, true)
	f.Add(uint8(255), true, false)
	f.Fuzz(func(t *testing.T, code uint8, left, right bool) {
		got := Compute(left, right, Code(code))
		if code >= NumCodes {
			if !got {
				t.Errorf("Hard error: Compute(%v, %v, %d) == false (out of range must be true)", left, right, code)
			}
			return
		}
		p := 0
		if left {
			p += 2
		}
		if right {
			p++
		}
		if want := code>>(3-p)&1 != 0; got != want {
			t.Errorf("Hard error: Compute(%v, %v, %d) == %v, want %v", left, right, code, got, want)
		}
	})
}
