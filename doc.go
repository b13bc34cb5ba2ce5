// Package pursuit answers one question about a line of police officers and
// thieves: how many thieves can be caught when an officer reaches at most k
// cells away and everyone takes part in at most one catch.
//
// 🚀 Packages:
//
//	catch/    — linear greedy scan with FIFO pending queues (the answer)
//	maxmatch/ — exact bipartite matching via Dinic max-flow (the reference)
//
// Quick ASCII example (k = 1):
//
//	    P T T P T
//	    0 1 2 3 4
//	    └─┘ └─┘
//
// gives two catches, (0,1) and (3,2); the thief at 4 stays free.
//
//	go get github.com/katalvlaran/pursuit/catch
package pursuit
