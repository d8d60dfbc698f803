package catalog

import (
	"errors"
	"testing"
)

func TestCompile_ClaimSets(t *testing.T) {
	def := Definition{
		ProhibitedClaims: map[string][]string{
			"meta":   {`baseline\s+one`, `shared`},
			"google": {`google\s+only`, `shared`},
		},
	}

	cat, err := Compile(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("platform set is own patterns plus deduplicated baseline", func(t *testing.T) {
		patterns := cat.ClaimPatterns("google")
		want := []string{`google\s+only`, `shared`, `baseline\s+one`}

		if len(patterns) != len(want) {
			t.Fatalf("expected %d patterns, got %d", len(want), len(patterns))
		}
		for i, p := range patterns {
			if p.Raw != want[i] {
				t.Errorf("pattern %d: expected %q, got %q", i, want[i], p.Raw)
			}
			if p.Index != i {
				t.Errorf("pattern %d: expected index %d, got %d", i, i, p.Index)
			}
		}
	})

	t.Run("baseline platform gets its own list once", func(t *testing.T) {
		patterns := cat.ClaimPatterns("meta")
		if len(patterns) != 2 {
			t.Fatalf("expected 2 patterns, got %d", len(patterns))
		}
	})

	t.Run("unknown platform falls back to the baseline", func(t *testing.T) {
		patterns := cat.ClaimPatterns("tiktok")
		if len(patterns) != 2 {
			t.Fatalf("expected baseline patterns, got %d", len(patterns))
		}
		if patterns[0].Raw != `baseline\s+one` {
			t.Errorf("expected baseline pattern first, got %q", patterns[0].Raw)
		}
	})

	t.Run("all is the baseline set", func(t *testing.T) {
		patterns := cat.ClaimPatterns("all")
		if len(patterns) != 2 {
			t.Fatalf("expected 2 patterns, got %d", len(patterns))
		}
	})

	t.Run("patterns match case-insensitively", func(t *testing.T) {
		patterns := cat.ClaimPatterns("meta")
		if !patterns[0].Regexp.MatchString("BASELINE ONE") {
			t.Error("expected case-insensitive match")
		}
	})
}

func TestCompile_Errors(t *testing.T) {
	t.Run("empty definition", func(t *testing.T) {
		_, err := Compile(Definition{})
		if !errors.Is(err, ErrEmptyCatalog) {
			t.Errorf("expected ErrEmptyCatalog, got %v", err)
		}
	})

	t.Run("invalid claim regex", func(t *testing.T) {
		_, err := Compile(Definition{
			ProhibitedClaims: map[string][]string{"meta": {`[unclosed`}},
		})

		var compileErr *CompileError
		if !errors.As(err, &compileErr) {
			t.Fatalf("expected CompileError, got %v", err)
		}
		if compileErr.Section != "prohibited_claims" {
			t.Errorf("expected section prohibited_claims, got %q", compileErr.Section)
		}
		if compileErr.Pattern != `[unclosed` {
			t.Errorf("expected offending pattern, got %q", compileErr.Pattern)
		}
	})

	t.Run("invalid misleading regex", func(t *testing.T) {
		_, err := Compile(Definition{
			ProhibitedClaims:   map[string][]string{"meta": {`ok`}},
			MisleadingPatterns: []string{`(*bad)`},
		})

		var compileErr *CompileError
		if !errors.As(err, &compileErr) {
			t.Fatalf("expected CompileError, got %v", err)
		}
		if compileErr.Section != "misleading_patterns" {
			t.Errorf("expected section misleading_patterns, got %q", compileErr.Section)
		}
	})
}

func TestTrademarkMatching(t *testing.T) {
	cat := Default()

	var nike *TrademarkPattern
	marks := cat.Trademarks()
	for i := range marks {
		if marks[i].Name == "nike" {
			nike = &marks[i]
		}
	}
	if nike == nil {
		t.Fatal("expected builtin nike trademark")
	}

	tests := []struct {
		text string
		want bool
	}{
		{"Better than Nike", true},
		{"better than nike!", true},
		{"nikel alloy frames", false}, // whole word only
	}
	for _, tt := range tests {
		if got := nike.Regexp.MatchString(tt.text); got != tt.want {
			t.Errorf("MatchString(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestPackLookup(t *testing.T) {
	cat := Default()

	t.Run("lookup by id", func(t *testing.T) {
		pack, err := cat.Pack("health-us")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pack.Vertical != "health" || pack.Region != "us" {
			t.Errorf("unexpected pack: %+v", pack)
		}
	})

	t.Run("unknown id is a not-found error", func(t *testing.T) {
		_, err := cat.Pack("no-such-pack")
		if !IsNotFound(err) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})

	t.Run("filter by vertical and region", func(t *testing.T) {
		packs := cat.Packs(PackFilter{Vertical: "health", Region: "us"})
		if len(packs) != 1 || packs[0].ID != "health-us" {
			t.Errorf("unexpected packs: %+v", packs)
		}
	})

	t.Run("empty filter returns everything", func(t *testing.T) {
		packs := cat.Packs(PackFilter{})
		if len(packs) != 6 {
			t.Errorf("expected 6 builtin packs, got %d", len(packs))
		}
	})
}

func TestMerge(t *testing.T) {
	base := Builtin()

	t.Run("empty override keeps the base", func(t *testing.T) {
		merged := Merge(base, Definition{})
		if len(merged.ProhibitedClaims) != len(base.ProhibitedClaims) {
			t.Error("expected prohibited claims unchanged")
		}
		if len(merged.Packs) != len(base.Packs) {
			t.Error("expected packs unchanged")
		}
	})

	t.Run("platform entries merge individually", func(t *testing.T) {
		merged := Merge(base, Definition{
			ProhibitedClaims: map[string][]string{
				"tiktok": {`banned\s+on\s+tiktok`},
			},
		})

		if _, ok := merged.ProhibitedClaims["tiktok"]; !ok {
			t.Error("expected tiktok entry added")
		}
		if len(merged.ProhibitedClaims["meta"]) != len(base.ProhibitedClaims["meta"]) {
			t.Error("expected meta baseline untouched")
		}
	})

	t.Run("non-empty sections replace wholesale", func(t *testing.T) {
		merged := Merge(base, Definition{
			Trademarks: []string{"acme"},
		})

		if len(merged.Trademarks) != 1 || merged.Trademarks[0] != "acme" {
			t.Errorf("expected override trademarks, got %v", merged.Trademarks)
		}
		if len(merged.MisleadingPatterns) != len(base.MisleadingPatterns) {
			t.Error("expected misleading patterns unchanged")
		}
	})

	t.Run("merge does not mutate the base maps", func(t *testing.T) {
		before := len(base.ProhibitedClaims)
		Merge(base, Definition{
			ProhibitedClaims: map[string][]string{"tiktok": {`x`}},
		})
		if len(base.ProhibitedClaims) != before {
			t.Error("expected base untouched")
		}
	})
}

func TestDefault_CompilesBuiltin(t *testing.T) {
	cat := Default()

	if len(cat.ClaimPatterns("meta")) == 0 {
		t.Error("expected baseline claim patterns")
	}
	if len(cat.MisleadingPatterns()) == 0 {
		t.Error("expected misleading patterns")
	}
	if len(cat.Trademarks()) == 0 {
		t.Error("expected trademarks")
	}
	if len(cat.DisclosuresFor("health")) != 3 {
		t.Errorf("expected 3 health disclosures, got %d", len(cat.DisclosuresFor("health")))
	}
	if len(cat.Rewrites()) == 0 {
		t.Error("expected safe rewrites")
	}

	if same := Default(); same != cat {
		t.Error("expected Default to return the cached catalog")
	}
}
