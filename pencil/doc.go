// Package pencil writes, erases and edits text on a paper.Paper while
// wearing down three resources: point durability, pencil length and eraser
// durability.
//
// Running out of a resource never fails an operation. A dull point writes
// spaces, a fully worn eraser stops erasing, and a pencil with no length left
// can no longer be sharpened. The only error is an edit that reaches outside
// the text already on the paper.
//
// A Pencil is not safe for concurrent use.
package pencil
