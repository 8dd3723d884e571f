package text

func Coalesce(first string, other ...string) string {
	res := first
	for i := range other {
		if res != "" {
			break
		}
		res = other[i]
	}
	return res
}
