package clients

const USER_AGENT = "redditpulse-client/1.0"
