package bloomfilter_test

import (
	"fmt"
	"strings"

	"github.com/FastFilter/bloomfilter"
)

func Example() {
	filter, err := bloomfilter.NewWithHashes(bloomfilter.Config{Bits: 20, Hashes: 3},
		func(n int) int { return 13 - (n % 13) },
		func(n int) int { return 3 + 5*n },
		func(n int) int { return 2 + 7*(n%10) },
	)
	if err != nil {
		panic(err)
	}

	numbers := []int{1, 2, 3, 10, 15, 20, 100, 200}
	for _, n := range numbers {
		filter.Add(n)
		fmt.Printf("added %d, error rate %.4f\n", n, filter.ErrorRate())
		var parts []string
		for _, m := range numbers {
			parts = append(parts, fmt.Sprintf("%d:%t", m, filter.ProbablyContains(m)))
		}
		fmt.Println(strings.Join(parts, " "))
	}
	// Output:
	// added 1, error rate 0.0027
	// 1:true 2:false 3:false 10:false 15:false 20:false 100:false 200:false
	// added 2, error rate 0.0174
	// 1:true 2:true 3:false 10:false 15:false 20:false 100:false 200:false
	// added 3, error rate 0.0476
	// 1:true 2:true 3:true 10:false 15:false 20:false 100:false 200:false
	// added 10, error rate 0.0918
	// 1:true 2:true 3:true 10:true 15:false 20:false 100:false 200:true
	// added 15, error rate 0.1469
	// 1:true 2:true 3:true 10:true 15:true 20:false 100:false 200:true
	// added 20, error rate 0.2090
	// 1:true 2:true 3:true 10:true 15:true 20:true 100:false 200:true
	// added 100, error rate 0.2747
	// 1:true 2:true 3:true 10:true 15:true 20:true 100:true 200:true
	// added 200, error rate 0.3412
	// 1:true 2:true 3:true 10:true 15:true 20:true 100:true 200:true
}
