package pager

// DefaultLookahead is how close to the end of the list a view may get
// before it asks for the next page.
const DefaultLookahead = 10

// ShouldLoadMore reports whether a view displaying the item at index of a
// list of count items should call LoadMore:
//  1. index is within lookahead items of the end, AND
//  2. no fetch is in flight, AND
//  3. the list is not exhausted
func ShouldLoadMore(index, count, lookahead int, st State) bool {
	if st.InFlight || st.Exhausted {
		return false
	}
	if lookahead < 0 {
		lookahead = 0
	}
	return index >= count-lookahead
}
