package main

import "fmt"
import "time"

import "github.com/HarrisonTotty/bnl/net/bnl"
import "github.com/HarrisonTotty/bnl/random"

func main() {
	src := random.New(uint64(time.Now().UnixNano()))

	n := bnl.MustNew(6, []int{6, 7, 6}, src)
	input := []bool{true, false, true, true, false, true}

	fmt.Printf("n = %v\n\n", n)

	result, err := n.Apply(input)
	if err != nil {
		panic(err.Error())
	}
	fmt.Printf("Result = %v\n", result)
}
