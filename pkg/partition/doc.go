/*
The partition package groups instances of a universe into equivalence classes by their projection onto a set of
attributes. It never compares instances pairwise: every attribute is one stable counting pass over the current order,
so a partition costs O(|attributes| * |U|) time and O(|U| + value range) scratch space.
*/
package partition
