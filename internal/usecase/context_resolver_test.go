package usecase

import (
	"testing"
)

func newTestResolver(t *testing.T, cfg ResolverConfig) *ContextResolver {
	t.Helper()
	resolver, err := NewContextResolver(cfg, NewPriceScanner(0), testVocabulary())
	if err != nil {
		t.Fatalf("NewContextResolver: %v", err)
	}
	return resolver
}

func TestResolve_PicksNearestPlausibleName(t *testing.T) {
	resolver := newTestResolver(t, ResolverConfig{})

	lines := []string{
		"Arnott's Tim Tam Biscuits 165g",
		"",
		"$4.50",
		"Cadbury Dairy Milk Chocolate Block 180g",
	}

	ctx := resolver.Resolve(lines, 2)
	if ctx == nil {
		t.Fatal("Resolve returned nil, want a name context")
	}
	if ctx.Name != "Cadbury Dairy Milk Chocolate Block 180g" {
		t.Errorf("name = %q, want the nearer candidate", ctx.Name)
	}
	if ctx.LineIndex != 3 {
		t.Errorf("lineIndex = %d, want 3", ctx.LineIndex)
	}
}

func TestResolve_EquidistantTieGoesToEarlierLine(t *testing.T) {
	resolver := newTestResolver(t, ResolverConfig{})

	lines := []string{
		"",
		"Arnott's Tim Tam Biscuits 165g",
		"$4.50",
		"Cadbury Dairy Milk Chocolate Block 180g",
	}

	ctx := resolver.Resolve(lines, 2)
	if ctx == nil {
		t.Fatal("Resolve returned nil, want a name context")
	}
	if ctx.LineIndex != 1 {
		t.Errorf("lineIndex = %d, want the earlier of two equidistant candidates", ctx.LineIndex)
	}
}

func TestResolve_ExcludesImplausibleCandidates(t *testing.T) {
	resolver := newTestResolver(t, ResolverConfig{})

	testCases := []struct {
		name  string
		lines []string
	}{
		{"price lines are never names", []string{"WAS $14.50", "$4.50", "SAVE $3"}},
		{"too short", []string{"Milk 1L", "$4.50", ""}},
		{"no domain keyword", []string{"Selected stores only see in store", "$4.50", ""}},
		{"empty window", []string{"", "$4.50", ""}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if ctx := resolver.Resolve(tc.lines, 1); ctx != nil {
				t.Errorf("Resolve = %+v, want nil", ctx)
			}
		})
	}
}

func TestResolve_BrandHintKeepsConfiguredCase(t *testing.T) {
	resolver := newTestResolver(t, ResolverConfig{})

	lines := []string{
		"cadbury dairy milk chocolate block 180g",
		"$4.50",
	}

	ctx := resolver.Resolve(lines, 1)
	if ctx == nil {
		t.Fatal("Resolve returned nil, want a name context")
	}
	if ctx.BrandHint != "Cadbury" {
		t.Errorf("brandHint = %q, want Cadbury", ctx.BrandHint)
	}
}

func TestResolve_CollectsPromoHints(t *testing.T) {
	resolver := newTestResolver(t, ResolverConfig{})

	lines := []string{
		"Cadbury Dairy Milk Chocolate Block 180g",
		"$4.50",
		"SAVE $1.50",
		"WAS $6",
		"$11.20 per kg",
	}

	ctx := resolver.Resolve(lines, 1)
	if ctx == nil {
		t.Fatal("Resolve returned nil, want a name context")
	}
	if !amountsEqual(ctx.Save, 1.50) {
		t.Errorf("save = %s, want 1.50", ctx.Save)
	}
	if !amountsEqual(ctx.Was, 6) {
		t.Errorf("was = %s, want 6", ctx.Was)
	}
	if ctx.UnitPrice != "$11.20/kg" {
		t.Errorf("unitPrice = %q, want $11.20/kg", ctx.UnitPrice)
	}
}

func TestResolve_BadgesStayWithinTheirWindow(t *testing.T) {
	resolver := newTestResolver(t, ResolverConfig{})

	t.Run("marker beside the price applies", func(t *testing.T) {
		lines := []string{
			"Cadbury Dairy Milk Chocolate Block 180g",
			"$3",
			"1/2 PRICE",
			"DOWN DOWN",
		}
		ctx := resolver.Resolve(lines, 1)
		if ctx == nil {
			t.Fatal("Resolve returned nil, want a name context")
		}
		if !ctx.HalfPrice {
			t.Error("halfPrice = false, want true")
		}
		if !ctx.DownDown {
			t.Error("downDown = false, want true")
		}
	})

	t.Run("distant marker belongs to the neighbor", func(t *testing.T) {
		lines := []string{
			"Cadbury Dairy Milk Chocolate Block 180g",
			"$3",
			"",
			"",
			"",
			"Nescafé Blend 43 Instant Coffee 150g",
			"1/2 PRICE",
		}
		ctx := resolver.Resolve(lines, 1)
		if ctx == nil {
			t.Fatal("Resolve returned nil, want a name context")
		}
		if ctx.HalfPrice {
			t.Error("halfPrice = true, want false for a marker five lines away")
		}
	})

	t.Run("distant was amount is not adopted", func(t *testing.T) {
		lines := []string{
			"Cadbury Dairy Milk Chocolate Block 180g",
			"$3",
			"", "", "", "", "",
			"WAS $9",
		}
		ctx := resolver.Resolve(lines, 1)
		if ctx == nil {
			t.Fatal("Resolve returned nil, want a name context")
		}
		if !ctx.Was.IsZero() {
			t.Errorf("was = %s, want absent for an amount six lines away", ctx.Was)
		}
	})
}

func TestResolve_WindowClampsAtBounds(t *testing.T) {
	resolver := newTestResolver(t, ResolverConfig{Radius: 2})

	lines := []string{
		"Arnott's Tim Tam Biscuits 165g",
		"", "", "",
		"$4.50",
	}

	if ctx := resolver.Resolve(lines, 4); ctx != nil {
		t.Errorf("Resolve = %+v, want nil when the only name sits outside the radius", ctx)
	}
}
