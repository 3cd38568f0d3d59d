package main

const pathobjectVersion = "0.1.0"
