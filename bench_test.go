package vector

import (
	"fmt"
	"testing"
)

func BenchmarkPushBack(b *testing.B) {
	sizes := []int{16, 1024, 65536}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Vector_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := New[int]()
				for j := 0; j < size; j++ {
					v.PushBack(j)
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var s []int
				for j := 0; j < size; j++ {
					s = append(s, j)
				}
				_ = s
			}
		})
	}
}

// BenchmarkCleanReuse fills and cleans one vector repeatedly, the pattern
// where keeping capacity pays off
func BenchmarkCleanReuse(b *testing.B) {
	b.Run("Vector/Clean", func(b *testing.B) {
		v := New[int64]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 256; j++ {
				v.PushBack(int64(j))
			}
			v.Clean()
		}
	})

	b.Run("Vector/New", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int64]()
			for j := 0; j < 256; j++ {
				v.PushBack(int64(j))
			}
		}
	})
}

func BenchmarkInsertFront(b *testing.B) {
	b.Run("Insert", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int]()
			for j := 0; j < 256; j++ {
				v.Insert(0, j)
			}
		}
	})

	b.Run("InsertMany", func(b *testing.B) {
		batch := make([]int, 256)
		for i := 0; i < b.N; i++ {
			v := New[int]()
			v.InsertMany(0, batch...)
		}
	})
}

func BenchmarkAccess(b *testing.B) {
	v := NewSized[int](1024)

	b.Run("Get", func(b *testing.B) {
		sum := 0
		for i := 0; i < b.N; i++ {
			sum += v.Get(i & 1023)
		}
		_ = sum
	})

	b.Run("At", func(b *testing.B) {
		sum := 0
		for i := 0; i < b.N; i++ {
			x, _ := v.At(i & 1023)
			sum += x
		}
		_ = sum
	})
}
