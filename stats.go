package hashmap

type Stats struct {
	Size       int
	Capacity   int
	Tombstones int
	Load       float32
}
