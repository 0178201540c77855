package skeleton

import "fmt"

// Hawk returns the built-in hawk skeleton: motion-captured wing and tail
// markers, plus fixed shoulder/tailbase/hood/tailpack markers used for
// reference only. Moving markers alternate left,right so that a mirrored
// one-sided pose lands in canonical order.
func Hawk() *Schema {
	markers := []string{
		"left_wingtip", "right_wingtip",
		"left_primary", "right_primary",
		"left_secondary", "right_secondary",
		"left_tailtip", "right_tailtip",
	}
	fixed := []string{
		"left_shoulder", "left_tailbase", "right_tailbase",
		"right_shoulder", "hood", "tailpack",
	}
	sections := []BodySection{
		{Name: "left_handwing", Markers: []string{"left_wingtip", "left_primary", "left_secondary"}},
		{Name: "right_handwing", Markers: []string{"right_wingtip", "right_primary", "right_secondary"}},
		{Name: "left_armwing", Markers: []string{"left_primary", "left_secondary", "left_tailbase", "left_shoulder"}},
		{Name: "right_armwing", Markers: []string{"right_primary", "right_secondary", "right_tailbase", "right_shoulder"}},
		{Name: "body", Markers: []string{"right_shoulder", "left_shoulder", "left_tailbase", "right_tailbase"}},
		{Name: "head", Markers: []string{"right_shoulder", "hood", "left_shoulder"}},
		{Name: "tail", Markers: []string{"right_tailtip", "left_tailtip", "left_tailbase", "right_tailbase"}},
	}
	return mustNew(markers, fixed, sections, SubstringRule{})
}

// Spider returns the built-in spider skeleton: four markers per leg on
// eight radially numbered legs, three midline body markers, and one fixed
// center marker. Legs 1-4 are the right side, 5-8 the left.
func Spider() *Schema {
	legMarkers := []string{"claw", "tibiametatarsus", "patella", "coxa"}

	var markers []string
	for leg := 1; leg <= 8; leg++ {
		for _, m := range legMarkers {
			markers = append(markers, fmt.Sprintf("%s%d", m, leg))
		}
	}
	markers = append(markers, "clypeus", "pedicel", "spinneret")

	var sections []BodySection
	for leg := 1; leg <= 8; leg++ {
		// Out-and-back outline so the leg draws as a line, not a loop.
		sections = append(sections, BodySection{
			Name: fmt.Sprintf("leg_%d", leg),
			Markers: []string{
				fmt.Sprintf("claw%d", leg),
				fmt.Sprintf("tibiametatarsus%d", leg),
				fmt.Sprintf("patella%d", leg),
				fmt.Sprintf("coxa%d", leg),
				fmt.Sprintf("patella%d", leg),
				fmt.Sprintf("tibiametatarsus%d", leg),
				fmt.Sprintf("claw%d", leg),
			},
		})
	}
	sections = append(sections, BodySection{
		Name: "body",
		Markers: []string{
			"clypeus", "coxa1", "coxa2", "coxa3", "coxa4",
			"spinneret", "coxa5", "coxa6", "coxa7", "coxa8",
		},
	})

	rule := NumericSuffixRule{Right: []int{1, 2, 3, 4}, Left: []int{5, 6, 7, 8}}
	return mustNew(markers, []string{"center"}, sections, rule)
}

// mustNew is for the static built-in variants, which are valid by
// construction.
func mustNew(markers, fixed []string, sections []BodySection, rule SideRule) *Schema {
	s, err := New(markers, fixed, sections, rule)
	if err != nil {
		panic(err)
	}
	return s
}
