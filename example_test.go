package symtable_test

import (
	"fmt"
	"sort"

	"github.com/ephraimmeles/symtable"
)

type symbol struct {
	kind  string
	depth int
}

func Example() {
	st := symtable.New[*symbol]()

	st.Put("main", &symbol{kind: "func"})
	st.Put("x", &symbol{kind: "var", depth: 1})

	// put never overwrites an existing binding
	if !st.Put("main", &symbol{kind: "var"}) {
		fmt.Println("main already bound")
	}

	old, _ := st.Replace("x", &symbol{kind: "const", depth: 1})
	fmt.Println("x was", old.kind)

	if sym, ok := st.Get("x"); ok {
		fmt.Println("x is", sym.kind)
	}

	st.Remove("main")
	fmt.Println(st.Contains("main"), st.Len())

	// Output:
	// main already bound
	// x was var
	// x is const
	// false 1
}

func ExampleTable_Map() {
	st := symtable.New[int]()
	st.Put("one", 1)
	st.Put("two", 2)
	st.Put("three", 3)

	var keys []string
	st.Map(func(key string, value int, extra any) {
		*extra.(*[]string) = append(*extra.(*[]string), fmt.Sprintf("%s=%d", key, value))
	}, &keys)

	// iteration order is unspecified
	sort.Strings(keys)
	fmt.Println(keys)

	// Output:
	// [one=1 three=3 two=2]
}

func ExampleTable_SetHasher() {
	// initialize the table with a custom hash function
	// this overrides the default shift hash
	st := symtable.New[string]()
	st.SetHasher(symtable.XXH3Hash)

	st.Put("one", "1")
	if val, ok := st.Get("one"); ok {
		fmt.Println(val)
	}

	// Output:
	// 1
}

func ExampleNewWithCapacities() {
	st, err := symtable.NewWithCapacities[int](11, 23, 47)
	if err != nil {
		panic(err)
	}
	for i := 0; i < 20; i++ {
		st.Put(fmt.Sprint("k", i), i)
	}
	fmt.Println(st.Capacity(), st.Len())

	_, err = symtable.NewWithCapacities[int](8, 16)
	fmt.Println(err)

	// Output:
	// 47 20
	// symtable: invalid capacity sequence: 8 is not prime
}
