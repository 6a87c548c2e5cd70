package wordnet_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wordnet/wordnet"
)

// ExampleWordNet_Distance indexes a tiny hierarchy and queries it.
func ExampleWordNet_Distance() {
	synsets := strings.Join([]string{
		"0,entity,anything that exists",
		"1,animal beast,a living organism that moves",
		"2,plant flora,a living organism that does not move",
		"3,dog,a domesticated canid",
		"4,cat,a domesticated felid",
		"5,rose,a shrub with showy flowers",
	}, "\n")
	hypernyms := "1,0\n2,0\n3,1\n4,1\n5,2\n"

	wn, err := wordnet.New(strings.NewReader(synsets), strings.NewReader(hypernyms))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, _ := wn.Distance("dog", "cat")
	s, _ := wn.SAP("dog", "cat")
	fmt.Println(d, s)

	d, _ = wn.Distance("dog", "rose")
	s, _ = wn.SAP("dog", "rose")
	fmt.Println(d, s)

	fmt.Println(wn.Nouns())
	// Output:
	// 2 animal beast
	// 4 entity
	// [animal beast cat dog entity flora plant rose]
}
