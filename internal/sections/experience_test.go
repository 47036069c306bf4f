package sections

import (
	"reflect"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   rawEntry
		want Entry
	}{
		{
			name: "current wins over community",
			in:   rawEntry{Current: true, Type: "community", Role: "Lead"},
			want: CurrentRole{Role: "Lead"},
		},
		{
			name: "community",
			in:   rawEntry{Type: "community", Role: "Organizer", Subtitle: "OWASP"},
			want: CommunityRole{Role: "Organizer", Subtitle: "OWASP"},
		},
		{
			name: "standard blue",
			in:   rawEntry{Role: "Eng", BadgeColor: "blue", Highlights: []string{"a"}},
			want: StandardRole{Role: "Eng", Palette: PaletteBlue, Footer: Footer{Kind: FooterHighlights, Lines: []string{"a"}}},
		},
		{
			name: "standard other colour is orange",
			in:   rawEntry{Role: "Eng", BadgeColor: "green", Certifications: []string{"OSCP"}},
			want: StandardRole{Role: "Eng", Palette: PaletteOrange, Footer: Footer{Kind: FooterCertifications, Lines: []string{"OSCP"}}},
		},
		{
			name: "both footers render neither",
			in:   rawEntry{Role: "Eng", Highlights: []string{"a"}, Certifications: []string{"b"}},
			want: StandardRole{Role: "Eng", Palette: PaletteOrange},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("classify() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

const experienceJSON = `{"experience":[
	{"current":true,"type":"community","role":"Principal Researcher","description":"Leads <em>red team</em>",
	 "duration":"2023 - Present","durationLabel":"2 yrs","tags":["Cloud","AppSec"],
	 "stats":[{"label":"CVEs","value":"40+"},{"label":"Talks","value":12}]},
	{"type":"community","role":"Chapter Lead","subtitle":"OWASP Cairo","icon":"users",
	 "items":[{"icon":"mic","title":"Meetups","description":"Monthly"}]},
	{"role":"Pentester","company":"Acme Security Labs","badge":"FULL-TIME","badgeColor":"blue",
	 "icon":"shield","duration":"2020 - 2023","highlights":["Led audits","Built tooling"]},
	{"role":"Intern","company":"Globex","badge":"INTERN","icon":"code","certifications":["OSCP","OSWE"]},
	{"role":"Contractor","company":"Initech","highlights":["x"],"certifications":["y"]}
]}`

func TestRenderExperienceVariants(t *testing.T) {
	r := newTestRenderer(t)
	doc := newTestPage(t, page)
	exp := decode[ExperienceDocument](t, experienceJSON)

	if len(exp.Experience) != 5 {
		t.Fatalf("decoded %d entries, want 5", len(exp.Experience))
	}
	if _, ok := exp.Experience[0].(CurrentRole); !ok {
		t.Fatalf("entry 0 is %T, want CurrentRole", exp.Experience[0])
	}
	if n := exp.Render(doc, r); n != 1 {
		t.Fatalf("Render = %d, want 1", n)
	}

	cards := doc.GetElementByID(ExperienceContainerID).Children()
	if len(cards) != 5 {
		t.Fatalf("got %d cards, want 5", len(cards))
	}

	current := cards[0]
	if !strings.Contains(current.TextContent(), "Current Position") {
		t.Error("current card missing status badge")
	}
	if current.QuerySelector("em") == nil {
		t.Error("current card description lost inline markup")
	}

	community := cards[1]
	if community.QuerySelector(".bg-purple-500") == nil {
		t.Error("community card missing purple icon tile")
	}
	if community.QuerySelector("a") != nil {
		t.Error("community card without link must not contain an anchor")
	}

	blue := cards[2]
	if blue.QuerySelector(".from-blue-500") == nil {
		t.Error("blue card missing blue gradient")
	}
	if !strings.Contains(blue.TextContent(), "Acme") || !strings.Contains(blue.TextContent(), "Led audits") {
		t.Error("blue card missing company short name or highlights")
	}
	if strings.Contains(blue.TextContent(), "Certifications") {
		t.Error("highlights card rendered certifications heading")
	}

	orange := cards[3]
	if orange.QuerySelector(".from-orange-500") == nil {
		t.Error("orange card missing orange gradient")
	}
	if !strings.Contains(orange.TextContent(), "Certifications") || !strings.Contains(orange.TextContent(), "OSWE") {
		t.Error("certifications footer missing")
	}

	both := cards[4]
	if both.QuerySelector(".border-t") != nil {
		t.Error("card with both footers should render neither")
	}
}

func TestRenderExperienceCompanyShort(t *testing.T) {
	tests := map[string]string{
		"Acme Security Labs": "Acme",
		"  Globex ":          "Globex",
		"":                   "",
	}
	for in, want := range tests {
		if got := firstWord(in); got != want {
			t.Errorf("firstWord(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderExperienceIdempotent(t *testing.T) {
	r := newTestRenderer(t)
	exp := decode[ExperienceDocument](t, experienceJSON)
	a, err := r.ExperienceMarkup(exp)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.ExperienceMarkup(exp)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("ExperienceMarkup is not deterministic")
	}
}

func TestRenderExperienceEmpty(t *testing.T) {
	r := newTestRenderer(t)
	doc := newTestPage(t, page)
	exp := decode[ExperienceDocument](t, `{"experience":[]}`)
	if n := exp.Render(doc, r); n != 0 {
		t.Errorf("Render = %d, want 0", n)
	}
}
