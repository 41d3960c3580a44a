package yaddr

import (
	"testing"
)

func BenchmarkFromBytes_IPv4(b *testing.B) {
	input := []byte{192, 168, 1, 100}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = FromBytes(input)
	}
}

func BenchmarkFromBytes_Padded(b *testing.B) {
	input := []byte{1, 2, 3, 4, 5, 6, 7}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = FromBytes(input)
	}
}

func BenchmarkFromOctets(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = FromOctets(192, 168, 1, 100)
	}
}

func BenchmarkAddr_Hash64(b *testing.B) {
	a, err := FromBytes([]byte{192, 168, 1, 100})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = a.Hash64()
	}
}

func BenchmarkAddr_Equal(b *testing.B) {
	x, _ := FromBytes([]byte{192, 168, 1, 100})
	y, _ := FromBytes([]byte{192, 168, 1, 101})
	b.ReportAllocs()
	for b.Loop() {
		_ = x.Equal(y)
	}
}

func BenchmarkAddr_String_IPv4(b *testing.B) {
	a, _ := FromBytes([]byte{192, 168, 1, 100})
	b.ReportAllocs()
	for b.Loop() {
		_ = a.String()
	}
}

func BenchmarkAddr_MapKey(b *testing.B) {
	m := make(map[Addr]int, 16)
	for i := range 16 {
		a, _ := FromOctets(10, 0, 0, i)
		m[a] = i
	}
	key, _ := FromOctets(10, 0, 0, 7)
	b.ReportAllocs()
	for b.Loop() {
		_ = m[key]
	}
}
