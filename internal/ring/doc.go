// Package ring builds ordered snapshots of ring membership. A View answers
// ownership questions with interval math alone, which makes it the reference
// the routed lookup is checked against, and verifies that a traversal of
// successor links visited peers in circular key order.
package ring
