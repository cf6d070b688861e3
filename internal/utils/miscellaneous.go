package utils

func Must[T any](obj T, err error) T {
	if err != nil {
		panic(err)
	}
	return obj
}

// PanicIfErr panics if err is not nil.
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}
