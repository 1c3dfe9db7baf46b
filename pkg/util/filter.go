package util

// InPlaceFilter keeps only the elements of s that p accepts, preserving
// order, without allocating a second slice
func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	kept := 0
	for _, element := range *s {
		if p(element) {
			(*s)[kept] = element
			kept++
		}
	}
	*s = (*s)[:kept]
}
