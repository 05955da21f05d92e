package main

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/bitutil"
	"github.com/hupe1980/bitvec/buffer"
)

func main() {
	ctx := context.Background()

	a, err := buffer.FromBytes([]byte{0b10110000, 0b01000000}, 12, bitvec.BigEndian)
	if err != nil {
		log.Fatal(err)
	}
	b, err := buffer.FromBytes([]byte{0b11000000, 0b01000000}, 12, bitvec.BigEndian)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("a =", a)
	fmt.Println("b =", b)

	i, err := bitvec.LocateRank(a, 2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("smallest prefix of a with 2 set bits:", i)

	last, err := bitvec.FindLast(a, true)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("rightmost set bit of a:", last)

	and, err := bitvec.CountAnd(a, b)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("popcount(a & b):", and)

	subset, err := bitvec.Subset(b, a)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("b subset of a:", subset)

	counts, err := bitvec.CountBatch(ctx, bitvec.OpXor, []bitvec.Pair{
		{A: a.Clone(), B: b.Clone()},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("batch popcount(a ^ b):", counts)

	hex, err := bitutil.ToHex(a)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("a as hex:", hex)

	rb, err := bitutil.ToBitmap(a)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("set positions of a:", rb.ToArray())
}
