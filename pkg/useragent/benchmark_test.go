package useragent_test

import (
	"testing"

	"github.com/dmitrymomot/uagen/pkg/random"
	"github.com/dmitrymomot/uagen/pkg/useragent"
)

var result string

func BenchmarkGenerate(b *testing.B) {
	g := useragent.NewGenerator(random.New(1))
	b.ReportAllocs()
	for b.Loop() {
		result = g.Generate()
	}
}

func BenchmarkGenerateFor(b *testing.B) {
	for _, browser := range useragent.Families() {
		b.Run(browser, func(b *testing.B) {
			g := useragent.NewGenerator(random.New(1))
			b.ReportAllocs()
			for b.Loop() {
				result, _ = g.GenerateFor(browser)
			}
		})
	}
}

func BenchmarkDetect(b *testing.B) {
	ua := useragent.NewGenerator(random.New(1)).Generate()
	b.ReportAllocs()
	for b.Loop() {
		_ = useragent.Detect(ua)
	}
}
