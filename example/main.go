package main

import (
	"encoding/binary"
	"fmt"
	"log"

	hashmap "github.com/ilBuso/HashMap"
)

func intKey(v uint32) []byte {
	key := make([]byte, 4)
	binary.LittleEndian.PutUint32(key, v)

	return key
}

func main() {
	hm, err := hashmap.New[int](10)
	if err != nil {
		log.Fatal(err)
	}

	// Insert key-value pairs
	if err := hm.Set(intKey(42), 10); err != nil {
		log.Fatal(err)
	}
	if err := hm.Set(intKey(99), 20); err != nil {
		log.Fatal(err)
	}

	// Find values
	if value, ok := hm.Get(intKey(42)); ok {
		fmt.Printf("Found value for key 42: %d\n", value)
	}
	if value, ok := hm.Get(intKey(99)); ok {
		fmt.Printf("Found value for key 99: %d\n", value)
	}

	// Delete a key-value pair
	if err := hm.Delete(intKey(42)); err != nil {
		log.Fatal(err)
	}

	// Try to find the deleted key
	if _, ok := hm.Get(intKey(42)); !ok {
		fmt.Println("Key 42 not found after deletion")
	}
	if value, ok := hm.Get(intKey(99)); ok {
		fmt.Printf("Key 99 still present: %d\n", value)
	}
}
