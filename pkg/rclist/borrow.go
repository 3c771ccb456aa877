package rclist

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrAlreadyBorrowed is the panic value when exclusive access is requested while any borrow is live.
	ErrAlreadyBorrowed errorkit.Error = "rclist: already borrowed"
	// ErrAlreadyMutablyBorrowed is the panic value when any access is requested while an exclusive borrow is live.
	ErrAlreadyMutablyBorrowed errorkit.Error = "rclist: already mutably borrowed"
)

// borrowFlag is a dynamically checked borrow state.
// Positive values count the live shared borrows, writing marks a live exclusive borrow.
type borrowFlag int

const writing borrowFlag = -1

// borrow acquires a shared borrow and returns its release function.
//
//	defer flag.borrow()()
func (f *borrowFlag) borrow() func() {
	if *f == writing {
		panic(ErrAlreadyMutablyBorrowed)
	}
	*f++
	return func() { *f-- }
}

// borrowMut acquires an exclusive borrow and returns its release function.
func (f *borrowFlag) borrowMut() func() {
	if *f != 0 {
		if *f == writing {
			panic(ErrAlreadyMutablyBorrowed)
		}
		panic(ErrAlreadyBorrowed)
	}
	*f = writing
	return func() { *f = 0 }
}
