package data

import (
	"testing"
)

func BenchmarkDatasetFromEmbedded(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := LoadDefaultDataset(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDatasetFromPostgres(b *testing.B) {
	if testDB == nil {
		b.Skip("BIBLE_TEST_DB_DSN not set")
	}

	model := NewModels(testDB)

	b.ResetTimer() // Start timing here

	for i := 0; i < b.N; i++ {
		if _, err := LoadDatasetFromDB(model.Books); err != nil {
			b.Fatal(err)
		}
	}
}
