// Package catch pairs police with thieves along a line of positions.
//
// 🚀 What is the catch problem?
//
//	Each index of a sequence holds a marker: 'P' for a police officer,
//	'T' for a thief, anything else for an empty cell. A police officer can
//	catch a thief only if their positions differ by at most k, and each
//	officer and each thief takes part in at most one catch. The question
//	is how many catches can happen in total.
//
//	    P T . . T P
//	    0 1 2 3 4 5      k = 1  →  (0,1) and (5,4): 2 catches
//
// ✨ Key features:
//   - single left-to-right scan, O(n) time, O(n) worst-case memory
//   - FIFO tie-break: always consumes the oldest eligible partner
//   - lazy expiry of positions that fell out of range
//   - optional hooks for every match and every expiry
//   - strict mode rejecting symbols other than 'P' and 'T'
//   - CountAll for many independent inputs in parallel
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pursuit/catch"
//
//	n, err := catch.Count([]byte("PTTPT"), 1)
//
//	res, err := catch.Match([]byte("PTTPT"), 1,
//	  catch.WithOnMatch(func(p catch.Pair) { fmt.Println(p) }),
//	)
//
// Why greedy is optimal:
//
//	When an entity arrives, every waiting entity of the opposite kind that
//	is still in range is interchangeable for the future except that the
//	older ones expire first. Consuming the oldest one therefore never
//	lowers the final count; an exchange argument turns any optimal
//	matching into the greedy one. Expired positions never become eligible
//	again because the distance to every later index only grows.
//
// Performance:
//
//   - Time:   O(n), every position is pushed and popped at most once
//   - Memory: O(n) for the two pending queues
//
// See maxmatch for an exact max-flow formulation of the same problem.
package catch
