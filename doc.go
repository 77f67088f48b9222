/*
Package vncdes implements the cipher behind VNC password authentication.

VNC (RFC 6143) authenticates with single-block DES, but not textbook DES:
before the key schedule runs, the bit order of every key byte is reversed.
The cipher serves two roles. In the handshake the zero-padded password is
the DES key and the server's random challenge is the plaintext. Outside
the handshake, servers store passwords obfuscated under a fixed,
well-known key; that "vault" form is what vncpasswd files and server
config entries contain.

This is a legacy, intentionally weak mechanism reproduced for protocol
compatibility. It provides no real confidentiality and must not be used
for anything but interoperating with VNC software.

References:
  [RFC 6143]: https://tools.ietf.org/html/rfc6143
*/
package vncdes
