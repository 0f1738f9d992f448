package card

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/metricard/pkg/icon"
)

func TestBuild_ActiveUsersExample(t *testing.T) {
	users, _ := icon.Lookup("users")
	got := Build(Props{
		Title:  "Active Users",
		Value:  1204,
		Change: "+12%",
		Icon:   users,
		Color:  Blue,
	})

	want := View{
		Title: "Active Users",
		Value: "1204",
		Badge: Badge{
			Icon:     users,
			Color:    Blue,
			Swatch:   Swatch{Background: "#DBEAFE", Foreground: "#2563EB"},
			Resolved: true,
		},
		Change: ChangeLine{
			Delta: "+12%",
			Text:  "+12% vs last week",
			Trend: Positive,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_EachColorResolvesItsSwatch(t *testing.T) {
	tests := []struct {
		color Color
		bg    string
		fg    string
	}{
		{Red, "#FEE2E2", "#DC2626"},
		{Blue, "#DBEAFE", "#2563EB"},
		{Green, "#DCFCE7", "#16A34A"},
		{Purple, "#F3E8FF", "#9333EA"},
	}
	for _, tt := range tests {
		t.Run(string(tt.color), func(t *testing.T) {
			v := Build(Props{Title: "t", Value: "v", Color: tt.color})
			assert.True(t, v.Badge.Resolved)
			assert.Equal(t, tt.bg, v.Badge.Swatch.Background)
			assert.Equal(t, tt.fg, v.Badge.Swatch.Foreground)
		})
	}
}

func TestBuild_UnknownColorIsUnstyled(t *testing.T) {
	for _, c := range []Color{"", "orange", "Blue"} {
		v := Build(Props{Title: "t", Color: c})
		assert.False(t, v.Badge.Resolved, "color %q", c)
		assert.True(t, v.Badge.Swatch.IsZero(), "color %q", c)
		assert.Equal(t, c, v.Badge.Color)
	}
}

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		change string
		want   Trend
	}{
		{"+12%", Positive},
		{"+", Positive},
		{"+abc", Positive},
		{"-3.4%", Negative},
		{"-", Negative},
		{"12%", Neutral},
		{"", Neutral},
		{" +5", Neutral},
		{"±2", Neutral},
		{"—1", Neutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyChange(tt.change), "change %q", tt.change)
	}
}

func TestBuild_TitleAndValueVerbatim(t *testing.T) {
	v := Build(Props{Title: "  Revenue (USD) ", Value: "$1,204.50 "})
	assert.Equal(t, "  Revenue (USD) ", v.Title)
	assert.Equal(t, "$1,204.50 ", v.Value)
}

func TestBuild_ChangeSuffixAlwaysPresent(t *testing.T) {
	for _, change := range []string{"+12%", "-1", "0", ""} {
		v := Build(Props{Change: change})
		assert.True(t, strings.HasSuffix(v.Change.Text, ChangeSuffix), "change %q", change)
		assert.True(t, strings.HasPrefix(v.Change.Text, change), "change %q", change)
		assert.Equal(t, change, v.Change.Delta)
	}
	assert.Equal(t, " vs last week", ChangeText(""))
}

type stringerValue struct{}

func (stringerValue) String() string { return "from stringer" }

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "abc", FormatValue("abc"))
	assert.Equal(t, "1204", FormatValue(1204))
	assert.Equal(t, "12.5", FormatValue(12.5))
	assert.Equal(t, "from stringer", FormatValue(stringerValue{}))
	assert.Equal(t, "1.5s", FormatValue(1500*time.Millisecond))
}

func TestColors_CoversPalette(t *testing.T) {
	colors := Colors()
	assert.Len(t, colors, len(palette))
	for _, c := range colors {
		_, ok := ResolveColor(c)
		assert.True(t, ok, c)
	}
}

func TestBuild_DoesNotMutateProps(t *testing.T) {
	p := Props{Title: "a", Value: 1, Change: "+1", Color: Red}
	before := p
	_ = Build(p)
	assert.Equal(t, before, p)
}
