/*
The dataset package turns CSV decision tables into integer coded universes. Every column gets a dense dictionary of
its sorted distinct values, missing tokens become api.Missing. Tables can be local, compressed or fetched from a URL
into a cache directory.
*/
package dataset
