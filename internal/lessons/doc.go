// Package lessons holds the content of the language-basics tour: one Body per
// concept, the small domain types those bodies demonstrate, and Catalog,
// which lists the lessons in their fixed running order.
package lessons
