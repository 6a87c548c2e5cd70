package outcast_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wordnet/outcast"
	"github.com/katalvlaran/wordnet/wordnet"
)

func ExampleOutcast_Outcast() {
	synsets := strings.Join([]string{
		"0,entity,",
		"1,animal,",
		"2,artifact,",
		"3,dog,",
		"4,cat,",
		"5,horse,",
		"6,table,",
	}, "\n")
	hypernyms := "1,0\n2,0\n3,1\n4,1\n5,1\n6,2\n"

	wn, err := wordnet.New(strings.NewReader(synsets), strings.NewReader(hypernyms))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	o, err := outcast.New(wn)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	odd, err := o.Outcast([]string{"dog", "cat", "table", "horse"})
	fmt.Println(odd, err)
	// Output:
	// table <nil>
}
