package insight

import (
	"context"
	"errors"
	"testing"
)

// countingGenerator records calls and returns a fixed result.
type countingGenerator struct {
	calls int
	resp  *Response
	err   error
}

func (g *countingGenerator) Generate(_ context.Context, _ Request) (*Response, error) {
	g.calls++
	return g.resp, g.err
}

func TestMemo_CachesSuccess(t *testing.T) {
	gen := &countingGenerator{resp: &Response{Kind: KindMarketSummary, Summary: "stable market"}}
	memo := NewMemo(gen)
	req := summaryRequest()

	first, err := memo.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := memo.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
	if first != second {
		t.Error("identical requests should return the cached response")
	}
}

func TestMemo_DistinctRequestsMiss(t *testing.T) {
	gen := &countingGenerator{resp: &Response{Kind: KindRecommendation}}
	memo := NewMemo(gen)

	if _, err := memo.Generate(context.Background(), recommendationRequest(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := memo.Generate(context.Background(), recommendationRequest(5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times, want 2 for distinct requests", gen.calls)
	}
}

func TestMemo_DoesNotCacheFailures(t *testing.T) {
	gen := &countingGenerator{err: failf("llm unavailable")}
	memo := NewMemo(gen)
	req := summaryRequest()

	for i := 0; i < 2; i++ {
		if _, err := memo.Generate(context.Background(), req); err == nil {
			t.Fatal("expected error")
		}
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times, want 2; failures must not be cached", gen.calls)
	}
}

func TestMemo_Invalidate(t *testing.T) {
	gen := &countingGenerator{resp: &Response{Kind: KindMarketSummary, Summary: "x"}}
	memo := NewMemo(gen)
	req := summaryRequest()

	if _, err := memo.Generate(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	memo.Invalidate()
	if _, err := memo.Generate(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times after invalidate, want 2", gen.calls)
	}
}

func TestServiceErrorUnwrapsWithAs(t *testing.T) {
	err := error(failf("boom: %d", 429))
	var serr *ServiceError
	if !errors.As(err, &serr) {
		t.Fatal("errors.As should match *ServiceError")
	}
	if serr.Message != "boom: 429" {
		t.Errorf("message = %q", serr.Message)
	}
}
