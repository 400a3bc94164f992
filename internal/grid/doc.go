// Package grid implements a paginated, editable row collection: an
// ordered set of row records presented in fixed-size pages, with dense
// 1-based sequence indices, page state, and selection kept consistent
// across mutations.
//
// The package is split into four pieces:
//
//   - Store owns the ordered rows and their sequence indices.
//   - Pure pagination functions derive page counts and windows from
//     (rowCount, pageSize) with no hidden state.
//   - Tracker records which rows are marked for a batch operation.
//   - Controller orchestrates the three in response to user intents and
//     publishes a consistent RenderState snapshot for presentation.
//
// All mutation is single-writer; the Controller serializes intents so
// pagination is always recomputed against a fully settled Store.
package grid
