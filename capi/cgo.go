//go:build cgo
// +build cgo

package capi

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"runtime/cgo"
	"unsafe"
)

// electorium_new constructs a resolver context (verbose != 0 enables
// debug logging) and returns an opaque handle for electorium_run /
// electorium_free.
//
//export electorium_new
func electorium_new(verbose C.int) C.uintptr_t {
	h := cgo.NewHandle(NewContext(verbose != 0))

	return C.uintptr_t(h)
}

// electorium_free destroys a context created by electorium_new.
//
//export electorium_free
func electorium_free(handle C.uintptr_t) {
	h := cgo.Handle(handle)
	if ctx, ok := h.Value().(*Context); ok {
		_ = ctx.Close()
	}
	h.Delete()
}

// electorium_run resolves the election encoded in data (fuzzcompile's
// binary format), writing the winning identity's raw bytes into a
// newly C-malloc'd buffer (caller frees with electorium_free_buffer)
// and returning one of the Status codes. *winner_out and *winner_len
// are left untouched unless the return value is StatusOK and the
// election had a winner.
//
//export electorium_run
func electorium_run(handle C.uintptr_t, data *C.uint8_t, dataLen C.size_t, winnerOut **C.uint8_t, winnerLen *C.size_t) C.int32_t {
	h := cgo.Handle(handle)
	ctx, ok := h.Value().(*Context)
	if !ok {
		return C.int32_t(StatusInvariantViolated)
	}

	goData := C.GoBytes(unsafe.Pointer(data), C.int(dataLen))
	winner, status := ctx.Run(goData)
	if status == StatusOK && len(winner) > 0 {
		buf := C.malloc(C.size_t(len(winner)))
		C.memcpy(buf, unsafe.Pointer(&winner[0]), C.size_t(len(winner)))
		*winnerOut = (*C.uint8_t)(buf)
		*winnerLen = C.size_t(len(winner))
	}

	return C.int32_t(status)
}

// electorium_free_buffer releases a buffer electorium_run allocated.
//
//export electorium_free_buffer
func electorium_free_buffer(buf *C.uint8_t) {
	C.free(unsafe.Pointer(buf))
}
