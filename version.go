package main

const Version = "0.2.0"
