/*
The reduct package searches a minimal attribute subset which keeps the positive region of the full attribute set.
The search runs in two phases: starting from the core it greedily adds the most significant attribute until the
significance of the full set is reached, then a backward pass drops every attribute which turns out to be redundant.
*/
package reduct
