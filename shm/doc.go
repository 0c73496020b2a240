// Package shm manages named shared-memory segments: files under
// /dev/shm mapped read-write into the process, the storage the
// relocatable containers are designed to live in.
//
// One process creates and populates a segment:
//
//	seg, err := shm.Create("metrics", int(slotmap.PlacedSize[Sample](cap)))
//	m, err := slotmap.Place[Sample](seg.Bytes(), cap)
//
// Other processes open the same name and attach:
//
//	seg, err := shm.Open("metrics")
//	m, err := slotmap.Attach[Sample](seg.Bytes(), cap)
//
// The package provides mapping lifecycle only. It does not synchronize:
// concurrent mutation of a shared container without external
// coordination is undefined, exactly as for an in-process map.
package shm
