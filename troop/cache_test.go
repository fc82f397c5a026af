package troop

import (
	"errors"
	"sync"
	"testing"
)

func TestCacheParse(t *testing.T) {
	c := NewCache()

	a, err := c.Parse("Cv//4Wb,7x4Wb")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	b, err := c.Parse("Cv//4Wb,7x4Wb")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if a != b {
		t.Error("second Parse did not return the cached expression")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheErrorsNotStored(t *testing.T) {
	c := NewCache()
	_, err := c.Parse("Cv/Wb/Sp")
	var cardErr *CardinalityError
	if !errors.As(err, &cardErr) {
		t.Fatalf("got %v, want *CardinalityError", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache()
	inputs := []string{"Ps", "Cv,Cv,7xSp/4Ax,3xPs", "3/4Bw", "Ps"}

	var wg sync.WaitGroup
	results := make([]*Expression, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e, err := c.Parse(inputs[i%len(inputs)])
			if err != nil {
				t.Errorf("Parse error: %v", err)
				return
			}
			results[i] = e
		}(i)
	}
	wg.Wait()

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	for i, e := range results {
		if e != nil && e != results[i%len(inputs)] {
			t.Errorf("result %d is not the shared expression for %q", i, inputs[i%len(inputs)])
		}
	}
}
