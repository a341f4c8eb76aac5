package codegen

import (
	"testing"

	"github.com/platinummonkey/syspropc/pkg/schema"
	"github.com/platinummonkey/syspropc/pkg/validation"
)

func benchProps(b *testing.B) *schema.Properties {
	b.Helper()
	props, err := schema.Parse([]byte(testSyspropFile))
	if err != nil {
		b.Fatalf("Parse failed: %v", err)
	}
	if diag := validation.Validate(props); diag != nil {
		b.Fatalf("Validate failed: %v", diag)
	}
	validation.Normalize(props)
	return props
}

// BenchmarkGenerateCpp benchmarks header and source emission alone, without
// file I/O.
func BenchmarkGenerateCpp(b *testing.B) {
	props := benchProps(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := CppBackend{}.Generate(props, "properties/PlatformProperties.sysprop.h")
		if err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerateGo benchmarks Go accessor emission.
func BenchmarkGenerateGo(b *testing.B) {
	props := benchProps(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := GoBackend{}.Generate(props, "")
		if err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkParseAndValidate benchmarks the front half of the pipeline.
func BenchmarkParseAndValidate(b *testing.B) {
	content := []byte(testSyspropFile)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		props, err := schema.Parse(content)
		if err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
		if diag := validation.Validate(props); diag != nil {
			b.Fatalf("Validate failed: %v", diag)
		}
		validation.Normalize(props)
	}
}
