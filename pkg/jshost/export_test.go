package jshost

var Unescape = unescape
