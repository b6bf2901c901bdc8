// Package asapy is an in-memory engine for propagating correlated
// uncertainties: it draws stratified random sample sets that honor a
// prescribed correlation structure between variables.
//
// 🚀 What is asapy-go?
//
//	A small, synchronous numerical library that brings together:
//		• covmat/  — correlation ⇄ covariance matrix conversion
//		• gmw/     — Gill–Murray–Wright modified Cholesky factorization,
//		             tolerant of indefinite and near-singular matrices
//		• lhs/     — Latin-hypercube (stratified) uniform & normal sampling
//		• sampler/ — correlated sample composition: direct multivariate
//		             normal draws, and stratified rank-matching that keeps
//		             every marginal perfectly stratified while approximating
//		             a target correlation matrix
//
// ✨ Why choose asapy-go?
//
//   - Deterministic – every stochastic entry point takes an injected
//     *rand.Rand; nil means a fixed default seed, never wall-clock time
//   - Robust – the GMW factorization never fails on indefinite input,
//     so downstream linear maps stay well-defined
//   - Composable – no global state, no I/O, no logging; inputs are never
//     mutated and every transform returns fresh matrices
//   - Pure Go – dense linear algebra via gonum, nothing hidden behind cgo
//
// Typical pipeline:
//
//	corr ──┐
//	       ├─ sampler.StratifiedCorrelated ──► M×N sample matrix
//	σ, μ ──┘        │
//	                ├─ lhs: stratified N(0,1) columns
//	                ├─ gmw: factor the incidental correlation
//	                └─ rank-match onto the target correlation
//
// The engine treats its inputs purely as a mean vector, a standard-deviation
// vector and a correlation (or covariance) matrix; which physical quantities
// they describe — nuclear reaction rates, cross sections, anything else —
// is the caller's business.
//
//	go get github.com/AI-Pranto/asapy-go
package asapy
