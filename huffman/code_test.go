package huffman

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestTablePrefixProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]byte, 8192)
	for i := range data {
		data[i] = byte(rng.Intn(256))
	}
	table := NewTable(Build(histogramOf(t, data)))

	for a := 0; a < NumSymbols; a++ {
		ca := table[a]
		if ca.Len == 0 {
			continue
		}
		for b := a + 1; b < NumSymbols; b++ {
			cb := table[b]
			if cb.Len == 0 {
				continue
			}
			if isPrefix(ca, cb) || isPrefix(cb, ca) {
				t.Fatalf("codes for symbols %d (%+v) and %d (%+v) overlap", a, ca, b, cb)
			}
		}
	}
}

func isPrefix(a, b Code) bool {
	if a.Len > b.Len {
		return false
	}
	return a.Bits == b.Bits>>(b.Len-a.Len)
}

func TestTableAssignsEveryPositiveSymbol(t *testing.T) {
	h := histogramOf(t, []byte("prefix codes need every observed symbol"))
	table := NewTable(Build(h))

	for sym := 0; sym < NumSymbols; sym++ {
		if h[sym] > 0 && table[sym].Len == 0 {
			t.Errorf("symbol %d has count %d but no code", sym, h[sym])
		}
		if h[sym] == 0 && table[sym].Len != 0 {
			t.Errorf("absent symbol %d has a code of length %d", sym, table[sym].Len)
		}
	}
}

func TestTableFrequentSymbolsGetShortCodes(t *testing.T) {
	data := append(bytes.Repeat([]byte{'a'}, 100), bytes.Repeat([]byte{'b'}, 10)...)
	data = append(data, 'c')
	table := NewTable(Build(histogramOf(t, data)))

	if table['a'].Len > table['b'].Len {
		t.Errorf("code for 'a' (%d bits) longer than for 'b' (%d bits)", table['a'].Len, table['b'].Len)
	}
	if table['a'].Len > table['c'].Len {
		t.Errorf("code for 'a' (%d bits) longer than for 'c' (%d bits)", table['a'].Len, table['c'].Len)
	}
}
