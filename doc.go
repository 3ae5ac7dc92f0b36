/*
Package htable provides a string-keyed hash table using open addressing.

A Table maps string keys to opaque value handles of type *V. The table stores
the pointer it is given and never reads through it; nil is reserved to mean
"absent" and cannot be stored.

Basic usage:

	import "github.com/theflywheel/htable"

	t, err := htable.New[int]()
	if err != nil {
		log.Fatal(err)
	}
	defer t.Destroy()

	one, two := 1, 2
	t.Set("a", &one)
	t.Set("b", &two)

	if v := t.Get("a"); v != nil {
		fmt.Println("a =", *v)
	}

	it := t.Iterator()
	for it.Next() {
		fmt.Println(it.Key(), *it.Value())
	}

Features:

  - FNV-1a (64-bit) hashing, unseeded and deterministic
  - Open addressing with linear probing, wrapping at the end of the slot array
  - Capacity starts at 16 and doubles whenever an insert would find the table
    half full, so the load factor never exceeds 0.5
  - Keys are copied on first insert; updates reuse the stored copy
  - No deletion, so probing never has to deal with tombstones

Restrictions:

  - A Table is not safe for concurrent use. Callers that share one between
    goroutines must serialize access themselves, for example with a sync.Mutex.
  - A table must not be modified while an Iterator over it is in use. Keys and
    values returned by an Iterator are only meaningful while the table is alive
    and unmodified.
  - Keys must not contain NUL bytes. Set rejects them with ErrInvalidKey and
    Get reports them as absent.
  - Iteration order is slot order, which changes whenever the table grows.

Errors:

Set returns ErrNilValue for a nil value and ErrInvalidKey for a key with a NUL
byte. New and Set return an error wrapping ErrAllocation when a slot array
cannot be allocated; in every case the table is left as it was. Doubling the
capacity past the largest int panics.
*/
package htable
