// Package lvlflow is a network flow computation engine: a residual-graph
// data model plus the classical flow algorithms, exact and in-memory.
//
// 🚀 What is lvlflow?
//
//	A compact, zero-dependency engine that brings together:
//		• core/    — the FlowNetwork arena: nodes, reciprocal arc pairs,
//		             capacity / cost / flow bookkeeping, residual queries
//		• maxflow/ — Ford–Fulkerson (DFS), Edmonds–Karp (BFS),
//		             Push-Relabel (FIFO preflow), Dinic
//		• mincost/ — Min-Cost Max-Flow via successive shortest paths
//		             (Bellman-Ford, negative-cycle detection)
//
// ✨ Why choose lvlflow?
//
//   - Exact integer arithmetic – no epsilon tuning, reproducible results
//   - One data model – every algorithm runs on the same *core.Network
//   - Cross-checked – all max-flow variants agree by construction and by test
//   - Pure Go – no cgo, no hidden deps
//
// Quick start:
//
//	n, _ := core.NewNetwork(6)
//	_ = n.AddEdge(0, 1, 10)
//	_ = n.AddEdge(0, 2, 8)
//	_ = n.AddEdge(1, 3, 5)
//	_ = n.AddEdge(1, 4, 8)
//	_ = n.AddEdge(2, 4, 10)
//	_ = n.AddEdge(3, 5, 10)
//	_ = n.AddEdge(4, 5, 10)
//	mf, _ := maxflow.EdmondsKarp(n, 0, 5, maxflow.DefaultOptions()) // 15
//
// Every solver mutates the network it is given; to compare algorithms on one
// topology, hand each its own Clone().
//
//	go get github.com/katalvlaran/lvlflow
package lvlflow
