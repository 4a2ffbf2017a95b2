package billdoc

import (
	"strings"
	"testing"
)

// charMeasurer wraps at a fixed rune count per line, independent of font
// metrics, so header planning is tested without a page canvas.
type charMeasurer struct {
	perLine int
}

func (m charMeasurer) Wrap(text string, size, width float64) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	runes := []rune(text)
	var lines []string
	for len(runes) > m.perLine {
		lines = append(lines, string(runes[:m.perLine]))
		runes = runes[m.perLine:]
	}
	return append(lines, string(runes))
}

func planFor(t *testing.T, d *Document) HeaderPlan {
	t.Helper()
	return PlanHeader(charMeasurer{perLine: 40}, NewPageMetrics(), d, DefaultProfile(), 0)
}

func TestHeaderHeightCoversBothColumns(t *testing.T) {
	long := strings.Repeat("VERY LONG COMPANY NAME AND ADDRESS ", 8)
	docs := map[string]*Document{
		"empty":          {},
		"short parties":  {Shipper: Party{CompanyName: "A", Address: "B"}},
		"long shipper":   {Shipper: Party{CompanyName: long, Address: long}},
		"long all":       {Shipper: Party{Address: long}, Consignee: Party{Address: long}, NotifyParty: Party{Address: long}},
		"phone included": {Shipper: Party{CompanyName: "A", Address: "B", Phone: "555"}},
	}

	pm := NewPageMetrics()
	for name, d := range docs {
		plan := planFor(t, d)

		leftH := plan.LeftBottomY - pm.MarginY
		rightH := plan.RightBottomY - pm.MarginY
		maxH := leftH
		if rightH > maxH {
			maxH = rightH
		}
		if plan.Height < maxH {
			t.Errorf("%s: header height %v smaller than column height %v", name, plan.Height, maxH)
		}
		if plan.PortsTop < plan.LeftBottomY || plan.PortsTop < plan.RightBottomY {
			t.Errorf("%s: ports grid at %v clips a column (%v / %v)",
				name, plan.PortsTop, plan.LeftBottomY, plan.RightBottomY)
		}
		if plan.TitleY() >= pm.MarginY+plan.Height {
			t.Errorf("%s: title baseline %v outside header (height %v)", name, plan.TitleY(), plan.Height)
		}
	}
}

func TestHeaderHeightGrowsWithContent(t *testing.T) {
	short := planFor(t, &Document{Shipper: Party{CompanyName: "A", Address: "B"}})
	long := planFor(t, &Document{Shipper: Party{
		CompanyName: strings.Repeat("LONG ", 30),
		Address:     strings.Repeat("ADDRESS ", 30),
	}})
	if long.Height <= short.Height {
		t.Errorf("longer shipper text did not grow the header: %v <= %v", long.Height, short.Height)
	}
}

func TestHeaderReservesLogoSpaceOnFailure(t *testing.T) {
	d := &Document{}
	withLogo := PlanHeader(charMeasurer{perLine: 40}, NewPageMetrics(), d, DefaultProfile(), logoFallbackHeight-8)
	withoutLogo := PlanHeader(charMeasurer{perLine: 40}, NewPageMetrics(), d, DefaultProfile(), 0)

	// A failed logo load reserves exactly the fallback space, which equals
	// a loaded logo of fallback-height-minus-gap, so anchors line up.
	if withLogo.CompanyNameY != withoutLogo.CompanyNameY {
		t.Errorf("company name anchor moved on logo failure: %v vs %v",
			withLogo.CompanyNameY, withoutLogo.CompanyNameY)
	}
}

func TestPageMetricsSplit(t *testing.T) {
	pm := NewPageMetrics()
	if pm.ContentWidth != pm.Width-40 {
		t.Errorf("content width = %v, want page width minus 40", pm.ContentWidth)
	}
	split := pm.SplitX()
	if split <= pm.MarginX || split >= pm.RightEdge() {
		t.Errorf("split %v outside content area", split)
	}
	frac := (split - pm.MarginX) / pm.ContentWidth
	if frac < 0.42 || frac > 0.44 {
		t.Errorf("split fraction = %v, want ~0.43", frac)
	}
}
