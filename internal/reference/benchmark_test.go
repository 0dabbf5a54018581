package reference

import (
	"shuvoedward/bible_verses/internal/data"
	"testing"
)

func BenchmarkNewMatcher(b *testing.B) {
	ds, err := data.LoadDefaultDataset()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := NewMatcher(ds, DefaultConfig()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindReferences(b *testing.B) {
	ds, err := data.LoadDefaultDataset()
	if err != nil {
		b.Fatal(err)
	}

	m, err := NewMatcher(ds, DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	text := "Bom dia! Hoje vamos ler João 3:16 kjv, depois Salmos 23 e 1 Coríntios 13:4-7 nvi; " +
		"na próxima semana Gênesis 1.1-3 e Apocalipse 21"

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m.FindReferences(text)
	}
}
