package usecase

var StripCodeFence = stripCodeFence
