/*
Package symtable provides a symbol table: a container binding unique string keys to caller owned values.

Bindings live in separately chained buckets. The bucket count is always a prime taken from an
ascending sequence (DefaultCapacities() unless the table was built with NewWithCapacities). Before an
insertion that would push the load factor above 0.75 the table moves to the next prime and relinks
every binding into the new buckets. Tables never shrink. Once the sequence is exhausted insertions
continue at the last capacity with longer chains.

Basic usage:

	st := symtable.New[*Symbol]()

	st.Put("main", &Symbol{Kind: Func})    // true, inserted
	st.Put("main", &Symbol{Kind: Var})     // false, keys are never overwritten by Put
	old, ok := st.Replace("main", newSym)  // swap the value of an existing binding
	sym, ok := st.Get("main")
	sym, ok = st.Remove("main")

	st.Map(func(key string, sym *Symbol, extra any) {
		fmt.Fprintln(extra.(io.Writer), key, sym.Kind)
	}, os.Stdout)

Values are stored as given. The table never copies what a pointer value refers to and Free does not
release values, they stay owned by the caller.

The default hasher is ShiftHash, which shifts an accumulator left by 5 bits and adds each key byte.
It is fast on identifiers but trivially collidable: an adversary controlling the keys can force every
binding into one chain. Use SetHasher with XXH3Hash or XXHash, or your own function, for such input.

A Table is not safe for concurrent use and must not be mutated from inside Map, ForEach or an iterator.
NewList builds the degenerate variant with a single chain that never grows.
*/
package symtable
