// Package pkg provides the core libraries for forester PCSF network analysis.
//
// # Overview
//
// Forester wraps an external prize-collecting Steiner forest solver with the
// plumbing a protein-network analysis needs: input preparation, solution
// annotation, and downstream comparison tooling. The pkg directory is
// organized into four main areas:
//
//  1. [table], [netgraph] - Data structures (column tables, weighted graphs)
//  2. [solver], [pcsf] - Solver driver and forest annotation
//  3. [pathcost], [idmap], [similarity], [summary] - Analysis utilities
//  4. [cache], [errors], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through forester:
//
//	Edge-list network + prize table + parameters
//	         ↓
//	    [solver] package (subprocess PCSF solver, JSON exchange)
//	         ↓
//	    [pcsf] package (forest construction + centrality/community annotation)
//	         ↓
//	    [netgraph] package (JSON persistence, DOT/SVG rendering)
//	         ↓
//	    [similarity] / [summary] / [pathcost] analyses
//
// # Quick Start
//
//	slv := solver.NewCommand("pcsf-solver")
//	forest, err := pcsf.Run(ctx, slv, prizes, network, params)
//	if err != nil {
//	    return err
//	}
//	table, err := summary.NodeTable(forest, []string{pcsf.AttrBetweenness})
package pkg
